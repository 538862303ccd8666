// Package trace writes query trace metadata. The metadata writer serializes
// the query configuration, per-connector session properties and the plan of
// a traced query into a single JSON file in the trace directory, exactly
// once per query.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MetadataFileName is the name of the trace metadata file inside a trace
// directory.
const MetadataFileName = "task_trace_meta.json"

// JSON keys of the metadata object.
const (
	queryConfigKey         = "queryConfig"
	connectorPropertiesKey = "connectorProperties"
	planNodeKey            = "planNode"
)

// FileSystem is the filesystem collaborator used by the writer.
type FileSystem interface {
	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)
	// Create creates the file at path for writing.
	Create(path string) (io.WriteCloser, error)
}

// OSFileSystem implements FileSystem on the local filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// QueryContext carries the session state recorded in trace metadata.
type QueryContext struct {
	// Config holds the raw query configuration values.
	Config map[string]string
	// ConnectorSessionProperties holds per-connector session properties,
	// keyed by connector id.
	ConnectorSessionProperties map[string]map[string]string
}

// PlanNode is the plan representation at the writer's boundary.
type PlanNode interface {
	// SerializePlan returns the plan as a JSON document.
	SerializePlan() (json.RawMessage, error)
}

// MetadataWriter writes the trace metadata file for one query. Write must be
// called at most once per writer.
type MetadataWriter struct {
	fs       FileSystem
	filePath string
	finished bool
}

// NewMetadataWriter returns a writer targeting traceDir. It fails if a
// metadata file already exists at the computed path. A nil fs uses the local
// filesystem.
func NewMetadataWriter(fs FileSystem, traceDir string) (*MetadataWriter, error) {
	if fs == nil {
		fs = OSFileSystem{}
	}
	filePath := filepath.Join(traceDir, MetadataFileName)
	exists, err := fs.Exists(filePath)
	if err != nil {
		return nil, fmt.Errorf("check trace metadata file: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("trace metadata file already exists: %s", filePath)
	}
	return &MetadataWriter{fs: fs, filePath: filePath}, nil
}

// Write serializes the query context and plan into the metadata file.
// Calling Write a second time is a contract violation and panics.
func (w *MetadataWriter) Write(ctx QueryContext, plan PlanNode) error {
	if w.finished {
		panic("trace: query metadata can only be written once")
	}
	w.finished = true

	planDoc, err := plan.SerializePlan()
	if err != nil {
		return fmt.Errorf("serialize plan: %w", err)
	}

	config := ctx.Config
	if config == nil {
		config = map[string]string{}
	}
	connectors := make(map[string]map[string]string, len(ctx.ConnectorSessionProperties))
	for id, props := range ctx.ConnectorSessionProperties {
		if props == nil {
			props = map[string]string{}
		}
		connectors[id] = props
	}

	meta, err := json.Marshal(map[string]json.RawMessage{
		queryConfigKey:         mustMarshal(config),
		connectorPropertiesKey: mustMarshal(connectors),
		planNodeKey:            planDoc,
	})
	if err != nil {
		return fmt.Errorf("marshal trace metadata: %w", err)
	}

	f, err := w.fs.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("create trace metadata file: %w", err)
	}
	if _, err := f.Write(meta); err != nil {
		f.Close()
		return fmt.Errorf("write trace metadata file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close trace metadata file: %w", err)
	}
	return nil
}

// mustMarshal marshals values that cannot fail, such as string maps.
func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
