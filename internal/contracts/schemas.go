// Package contracts compiles the embedded JSON Schemas once and validates request bodies and events against them.
package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/MaryChris21/Estify/schemas"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	PropertyFieldsSchema = "PropertyFieldsRequest"
	PropertyEventSchema  = "PropertyEvent"
	SchemaVersion        = "1.0.0"
)

var schemaRoots = []string{"requests", "events"}

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// every resource is added first so that schemas can $ref each other
	var paths []string
	for _, root := range schemaRoots {
		err := fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := schemas.SchemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}
	}

	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		compiledSchemas[generateKeyFromPath(path)] = schema
	}
}

// generateKeyFromPath turns "requests/property-fields/v1.json" into "PropertyFieldsRequest/1.0.0"
// and "events/property/v1.json" into "PropertyEvent/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}

	caser := cases.Title(language.English)

	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	switch parts[0] {
	case "events":
		name.WriteString("Event")
	case "requests":
		name.WriteString("Request")
	}

	version := strings.Replace(parts[2], "v", "", 1) + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

func lookup(name, version string) (*jsonschema.Schema, error) {
	schema, ok := compiledSchemas[fmt.Sprintf("%s/%s", name, version)]
	if !ok {
		return nil, fmt.Errorf("schema '%s' version '%s' not found", name, version)
	}
	return schema, nil
}

// ValidateEvent checks a serialized event body against its schema.
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	schema, err := lookup(eventType, eventVersion)
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
