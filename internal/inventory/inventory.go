// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inventory holds the list of gcloud resource types a run targets.
package inventory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"

	yamlx "github.com/sighupio/nukescript/internal/x/yaml"
)

const schemaURL = "inventory.json"

var (
	ErrReadInventory    = errors.New("error while reading inventory")
	ErrInvalidInventory = errors.New("invalid inventory")
	ErrSchema           = errors.New("error while loading inventory schema")
)

//go:embed schema.json
var schemaJSON []byte

// Target is a gcloud component and the resource types to wipe under it. An
// empty resource type targets the component itself.
type Target struct {
	Component     string   `json:"component"     validate:"required"       yaml:"component"`
	ResourceTypes []string `json:"resourceTypes" validate:"required,min=1" yaml:"resourceTypes"`
	UseURI        bool     `json:"useUri"        yaml:"useUri"`
}

type Inventory struct {
	Targets []Target `json:"targets" validate:"required,min=1,dive" yaml:"targets"`
}

// Default is the inventory used when no file is given. Order matters: the
// script deletes targets top to bottom.
func Default() Inventory {
	return Inventory{
		Targets: []Target{
			{Component: "container", ResourceTypes: []string{"clusters"}, UseURI: true},
			{
				Component: "compute",
				ResourceTypes: []string{
					"instances", "addresses", "target-http-proxies", "target-https-proxies", "target-grpc-proxies",
					"url-maps", "backend-services", "firewall-rules", "forwarding-rules", "health-checks",
					"http-health-checks", "https-health-checks", "instance-templates", "networks", "routes",
					"routers", "target-pools", "target-tcp-proxies",
				},
				UseURI: true,
			},
			{Component: "sql", ResourceTypes: []string{"instances"}},
			{Component: "app", ResourceTypes: []string{"services", "firewall-rules"}, UseURI: true},
			{Component: "pubsub", ResourceTypes: []string{"subscriptions", "topics", "snapshots"}, UseURI: true},
			{Component: "functions", ResourceTypes: []string{""}},
		},
	}
}

// Load reads an inventory file, checking it against the embedded JSON schema
// first and the struct rules after.
func Load(path string) (Inventory, error) {
	schema, err := loadSchema()
	if err != nil {
		return Inventory{}, err
	}

	raw, err := yamlx.FromFileV3[any](path)
	if err != nil {
		return Inventory{}, fmt.Errorf("%w: %w", ErrReadInventory, err)
	}

	if err := schema.Validate(raw); err != nil {
		return Inventory{}, fmt.Errorf("%w: %w", ErrInvalidInventory, err)
	}

	inv, err := yamlx.FromFileV3[Inventory](path)
	if err != nil {
		return Inventory{}, fmt.Errorf("%w: %w", ErrReadInventory, err)
	}

	if err := inv.Validate(); err != nil {
		return Inventory{}, err
	}

	return inv, nil
}

func (i Inventory) Validate() error {
	if err := validator.New().Struct(i); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInventory, err)
	}

	return nil
}

// Marshal renders the inventory as a YAML document Load can read back.
func (i Inventory) Marshal() ([]byte, error) {
	return yamlx.MarshalV3(i)
}

func loadSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return schema, nil
}
