// Package contracts holds the JSON schemas of the catalog file format and of
// the events published on the bus.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

const baseURL = "https://ndjimba.local/"

// Event names and schema versions.
const (
	AccountRegisteredEvent       = "AccountRegisteredEvent"
	ListingReportedEvent         = "ListingReportedEvent"
	SupportContactRequestedEvent = "SupportContactRequestedEvent"
	EventVersion                 = "1.0.0"
)

const catalogSchemaPath = "schemas/catalog/v1.json"

var (
	compiledEvents = make(map[string]*jsonschema.Schema)
	catalogSchema  *jsonschema.Schema
)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := schemasFS.ReadFile(path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(baseURL+path, strings.NewReader(string(data))); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("contracts: %v", err))
	}

	for _, path := range paths {
		schema, err := compiler.Compile(baseURL + path)
		if err != nil {
			panic(fmt.Sprintf("contracts: could not compile schema %s: %v", path, err))
		}
		if path == catalogSchemaPath {
			catalogSchema = schema
			continue
		}
		if key := generateKeyFromPath(path); key != "" {
			compiledEvents[key] = schema
		}
	}
}

// generateKeyFromPath turns "schemas/events/listing-reported/v1.json" into
// "ListingReportedEvent/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "schemas/events/")
	if trimmed == path {
		return ""
	}
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Event")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return name.String() + "/" + version
}

// ValidateEvent checks an encoded event against its schema.
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	schema, ok := compiledEvents[eventType+"/"+eventVersion]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventType, eventVersion)
	}
	return validate(schema, body)
}

// ValidateCatalog checks an encoded catalog file against the catalog schema.
func ValidateCatalog(body []byte) error {
	return validate(catalogSchema, body)
}

func validate(schema *jsonschema.Schema, body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
