package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// chunkCacheSize bounds the compiled-chunk cache. Reloading plugins (e.g.
// after an in-TUI reload) reuses compiled protos for unchanged paths.
const chunkCacheSize = 64

// Engine runs plugin files. Each file executes in its own fresh Lua state;
// the only shared surface is the Registry the API functions write into.
type Engine struct {
	reg    *Registry
	logger *log.Logger
	chunks *lru.Cache[string, *glua.FunctionProto]
}

// NewEngine creates an engine registering contributions into reg.
func NewEngine(reg *Registry, logger *log.Logger) *Engine {
	chunks, _ := lru.New[string, *glua.FunctionProto](chunkCacheSize)
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{reg: reg, logger: logger, chunks: chunks}
}

// LoadDir runs every .lua file in dir, in lexical order. A failing plugin
// is logged and skipped; it must not take the others down. A missing dir
// is not an error.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read plugin dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.LoadFile(path); err != nil {
			e.logger.Warn("plugin failed to load", "path", path, "err", err)
		}
	}
	return nil
}

// LoadFile runs a single plugin file. The plugin's namespace is the file
// base name without extension.
func (e *Engine) LoadFile(path string) error {
	name := strings.TrimSuffix(filepath.Base(path), ".lua")

	proto, err := e.compile(path)
	if err != nil {
		return err
	}

	L := glua.NewState()
	defer L.Close()
	e.registerAPI(L, name)

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, glua.MultRet, nil); err != nil {
		return fmt.Errorf("run plugin %q: %w", name, err)
	}
	e.logger.Debug("plugin loaded", "plugin", name)
	return nil
}

func (e *Engine) compile(path string) (*glua.FunctionProto, error) {
	if proto, ok := e.chunks.Get(path); ok {
		return proto, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin: %w", err)
	}
	defer f.Close()
	chunk, err := parse.Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("parse plugin: %w", err)
	}
	proto, err := glua.Compile(chunk, path)
	if err != nil {
		return nil, fmt.Errorf("compile plugin: %w", err)
	}
	e.chunks.Add(path, proto)
	return proto, nil
}
