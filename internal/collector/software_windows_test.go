package collector

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows/registry"
)

func createUninstallKey(t *testing.T) string {
	t.Helper()
	base := `SOFTWARE\computerinfo-test-` + uuid.NewString()
	key, _, err := registry.CreateKey(registry.CURRENT_USER, base, registry.ALL_ACCESS)
	require.NoError(t, err)
	key.Close()

	t.Cleanup(func() {
		if k, err := registry.OpenKey(registry.CURRENT_USER, base, registry.ENUMERATE_SUB_KEYS); err == nil {
			subs, _ := k.ReadSubKeyNames(-1)
			k.Close()
			for _, s := range subs {
				_ = registry.DeleteKey(registry.CURRENT_USER, base+`\`+s)
			}
		}
		_ = registry.DeleteKey(registry.CURRENT_USER, base)
	})
	return base
}

func addEntry(t *testing.T, base, sub string, displayName *string) {
	t.Helper()
	key, _, err := registry.CreateKey(registry.CURRENT_USER, base+`\`+sub, registry.ALL_ACCESS)
	require.NoError(t, err)
	defer key.Close()
	if displayName != nil {
		require.NoError(t, key.SetStringValue("DisplayName", *displayName))
	}
}

func TestDisplayNames(t *testing.T) {
	base := createUninstallKey(t)
	named, empty := "7-Zip 23.01 (x64)", ""
	addEntry(t, base, "a-named", &named)
	addEntry(t, base, "b-empty", &empty)
	addEntry(t, base, "c-missing", nil)

	got, err := displayNames(registry.CURRENT_USER, []string{base, base + `\absent`})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{named, ""}, got)
}

func TestDisplayNamesNoKeys(t *testing.T) {
	_, err := displayNames(registry.CURRENT_USER, []string{`SOFTWARE\computerinfo-absent-` + uuid.NewString()})
	assert.Error(t, err)
}
