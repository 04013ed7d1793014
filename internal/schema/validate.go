// Package schema provides JSON schema validation for canonical result trees.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
	schemafs "github.com/huixin2022/allure-analysis-mcp/schema"
)

const treeSchemaFile = "tree.schema.json"

var (
	treeSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles the embedded tree schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(treeSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("read tree schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal tree schema: %w", err)
			return
		}

		if err := compiler.AddResource(treeSchemaFile, doc); err != nil {
			compileErr = fmt.Errorf("add tree schema resource: %w", err)
			return
		}

		treeSchema, err = compiler.Compile(treeSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile tree schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateTreeJSON validates JSON data against the tree schema.
func ValidateTreeJSON(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := treeSchema.Validate(v); err != nil {
		return fmt.Errorf("tree validation failed: %w", err)
	}

	return nil
}

// TreeValidator checks parsed trees against the embedded schema.
type TreeValidator struct{}

// NewTreeValidator creates a TreeValidator.
func NewTreeValidator() *TreeValidator {
	return &TreeValidator{}
}

// ValidateTree encodes tree as JSON and validates the result.
func (TreeValidator) ValidateTree(tree *m.Tree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	return ValidateTreeJSON(data)
}
