package device

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/jaypipes/ghw"

	"sealbox/internal/storage"
)

// Fingerprinter collects machine-specific provenance for vault metadata
type Fingerprinter struct {
}

func New() *Fingerprinter {
	return &Fingerprinter{}
}

// Origin collects hardware-specific information about the current machine
func (f *Fingerprinter) Origin() (storage.Origin, error) {
	machineID, err := machineid.ID()
	if err != nil {
		return storage.Origin{}, fmt.Errorf("failed to get machine ID: %w", err)
	}

	cpu, err := ghw.CPU()
	if err != nil {
		return storage.Origin{}, fmt.Errorf("failed to get CPU info: %w", err)
	}

	memory, err := ghw.Memory()
	if err != nil {
		return storage.Origin{}, fmt.Errorf("failed to get memory info: %w", err)
	}

	details := map[string]string{
		"cpu_model":    cpu.Processors[0].Model,
		"cpu_vendor":   cpu.Processors[0].Vendor,
		"total_memory": fmt.Sprintf("%d", memory.TotalPhysicalBytes),
		"os":           runtime.GOOS,
		"arch":         runtime.GOARCH,
		"hostname":     getHostname(),
	}

	hashInput := []string{
		machineID,
		fmt.Sprintf("%d", cpu.Processors[0].ID),
		fmt.Sprintf("%d", memory.TotalPhysicalBytes),
		runtime.GOOS,
		runtime.GOARCH,
	}

	return storage.Origin{
		MachineID:    machineID,
		HardwareHash: generateHash(strings.Join(hashInput, "|")),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Details:      details,
	}, nil
}

// Matches reports whether the current machine is the one recorded in origin
func (f *Fingerprinter) Matches(origin storage.Origin) (bool, error) {
	current, err := f.Origin()
	if err != nil {
		return false, fmt.Errorf("failed to get current origin: %w", err)
	}

	if current.MachineID != origin.MachineID ||
		current.HardwareHash != origin.HardwareHash {
		return false, nil
	}

	return true, nil
}

func generateHash(input string) string {
	hash := sha256.New()
	hash.Write([]byte(input))
	return hex.EncodeToString(hash.Sum(nil))
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
