package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "devctl.yaml", "backend_dir: api\nfrontend_dir: web\nbackend_port: 9000\nfrontend_port: 3000\nlaunch_delay_ms: 500\ngrace_timeout_ms: 2000\npython_modules: [uvicorn, fastapi]\nstatus_addr: 127.0.0.1:7070\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.BackendDir != "api" || cfg.FrontendDir != "web" || cfg.BackendPort != 9000 || cfg.FrontendPort != 3000 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.LaunchDelayMS != 500 || cfg.GraceTimeoutMS != 2000 || cfg.StatusAddr != "127.0.0.1:7070" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.PythonModules) != 2 || cfg.PythonModules[1] != "fastapi" {
		t.Fatalf("unexpected modules: %+v", cfg.PythonModules)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "devctl.json", `{"backend_dir":"srv","backend_port":8001,"python_modules":["uvicorn"]}`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.BackendDir != "srv" || cfg.BackendPort != 8001 || len(cfg.PythonModules) != 1 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.FrontendDir != "" || cfg.FrontendPort != 0 {
		t.Fatalf("unset fields should stay zero: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "devctl.toml", "frontend_dir=\"ui\"\nfrontend_port=4173\ngrace_timeout_ms=1500\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.FrontendDir != "ui" || cfg.FrontendPort != 4173 || cfg.GraceTimeoutMS != 1500 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil { t.Fatalf("expected error on empty path") }
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil { t.Fatalf("expected unsupported extension error") }
	p = writeTempFile(t, d, "ports.yaml", "backend_port: 70000\n")
	if _, err := Load(p); err == nil { t.Fatalf("expected out-of-range port error") }
	p = writeTempFile(t, d, "neg.json", `{"grace_timeout_ms": -1}`)
	if _, err := Load(p); err == nil { t.Fatalf("expected negative duration error") }
}
