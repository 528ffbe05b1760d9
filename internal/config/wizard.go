package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/hvacpanel/internal/prefs"
	"github.com/ziadkadry99/hvacpanel/internal/sections"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to hvacpanel! Let's configure the dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Start section.
	items := make([]string, len(sections.Catalog))
	for i, s := range sections.Catalog {
		items[i] = fmt.Sprintf("%-12s %s", s.Key, s.Title)
	}
	sectionPrompt := promptui.Select{
		Label: "Section shown for the empty location",
		Items: items,
	}
	idx, _, err := sectionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default section: %w", err)
	}
	cfg.Navigation.DefaultSection = string(sections.Catalog[idx].Key)

	// 3. Preference backend.
	backendPrompt := promptui.Select{
		Label: "Where should UI preferences be stored",
		Items: []string{
			"sqlite — local file",
			"redis  — shared redis",
			"memory — lost on restart",
		},
	}
	bIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend selection: %w", err)
	}
	cfg.Preferences.Backend = []string{prefs.BackendSQLite, prefs.BackendRedis, prefs.BackendMemory}[bIdx]

	switch cfg.Preferences.Backend {
	case prefs.BackendSQLite:
		dirPrompt := promptui.Prompt{Label: "Data directory", Default: cfg.Preferences.DataDir}
		cfg.Preferences.DataDir, err = dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
	case prefs.BackendRedis:
		addrPrompt := promptui.Prompt{Label: "Redis address", Default: cfg.Preferences.RedisAddr}
		cfg.Preferences.RedisAddr, err = addrPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
	}

	// 4. Extra new markers.
	markerPrompt := promptui.Prompt{
		Label:   "Segments meaning \"create\" (comma-separated)",
		Default: strings.Join(cfg.Navigation.NewMarkers, ","),
	}
	markerStr, err := markerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("new markers: %w", err)
	}
	cfg.Navigation.NewMarkers = splitAndTrim(markerStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
