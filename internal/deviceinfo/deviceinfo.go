// Package deviceinfo identifies the installation the SDK is running on.
package deviceinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/host"
)

// Properties describes the device/app pairing sent alongside verification
// requests. InstallID is stable across restarts; the host fields are
// refreshed on every load.
type Properties struct {
	InstallID string `json:"install_id"`
	MachineID string `json:"machine_id"`
	Hostname  string `json:"hostname"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

var propsMutex sync.Mutex

type Manager struct {
	propsPath string
}

func NewManager(propsPath string) *Manager {
	return &Manager{
		propsPath: propsPath,
	}
}

// LoadOrGenerate returns the installation properties, minting a fresh
// install ID when the backing file is missing or corrupted. The second
// return value reports whether a new ID was generated.
func (m *Manager) LoadOrGenerate() (*Properties, bool, error) {
	propsMutex.Lock()
	defer propsMutex.Unlock()

	existing, err := m.load()
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		if os.IsNotExist(err) ||
			errors.As(err, &syntaxErr) ||
			errors.As(err, &typeErr) {
			// Generate a new install ID for missing or corrupted files
			props := currentHostProperties()
			props.InstallID = uuid.New().String()
			if err := m.save(props); err != nil {
				return nil, false, err
			}
			return props, true, nil
		}
		return nil, false, err
	}

	if existing.InstallID == "" {
		existing.InstallID = uuid.New().String()
		if err := m.save(existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	// Host identity may have changed since last run; refresh it but keep
	// the install ID.
	refreshed := currentHostProperties()
	refreshed.InstallID = existing.InstallID
	if err := m.save(refreshed); err != nil {
		return nil, false, err
	}

	return refreshed, false, nil
}

func currentHostProperties() *Properties {
	props := &Properties{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if info, err := host.Info(); err == nil {
		props.MachineID = info.HostID
		props.Hostname = info.Hostname
	} else if hostname, err := os.Hostname(); err == nil {
		props.Hostname = hostname
	}

	return props
}

func (m *Manager) load() (*Properties, error) {
	data, err := os.ReadFile(m.propsPath)
	if err != nil {
		return nil, err
	}

	var props Properties
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("failed to parse device properties file: %w", err)
	}

	return &props, nil
}

func (m *Manager) save(props *Properties) error {
	dir := filepath.Dir(m.propsPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.propsPath, data, 0600)
}
