package collector

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// uninstallPaths lists the HKLM Uninstall locations for 64 and 32 bit
// software.
var uninstallPaths = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// InstalledSoftware returns the DisplayName of every Uninstall entry that
// has one. Missing keys are skipped.
func (p *windowsProvider) InstalledSoftware(_ context.Context) ([]string, error) {
	return displayNames(registry.LOCAL_MACHINE, uninstallPaths)
}

// displayNames collects the DisplayName string of every subkey of paths
// under root. A present but empty DisplayName is kept; subkeys without one
// are skipped.
func displayNames(root registry.Key, paths []string) ([]string, error) {
	var names []string
	opened := 0

	for _, path := range paths {
		key, err := registry.OpenKey(root, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		opened++
		subKeys, err := key.ReadSubKeyNames(-1)
		key.Close()
		if err != nil {
			continue
		}

		for _, sub := range subKeys {
			sk, err := registry.OpenKey(root, path+`\`+sub, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			name, _, err := sk.GetStringValue("DisplayName")
			sk.Close()
			if err == nil {
				names = append(names, name)
			}
		}
	}

	if opened == 0 {
		return nil, fmt.Errorf("open Uninstall registry keys: none found")
	}
	return names, nil
}
