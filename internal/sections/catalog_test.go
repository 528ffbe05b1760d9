package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

func TestTableCoversCatalog(t *testing.T) {
	table, err := Table(DefaultKey, nil)
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, len(Catalog))
	for i, e := range entries {
		assert.Equal(t, Catalog[i].Key, e.Key)
		assert.Equal(t, routes.FallbackList, e.OnUnmatchedDeepPath)
		assert.Equal(t, Catalog[i].DetailTitle != "", e.Detail != nil, "detail for %s", e.Key)
		assert.Equal(t, Catalog[i].CreateTitle != "", e.Create != nil, "create for %s", e.Key)
	}
}

func TestTableDeepPathOverride(t *testing.T) {
	table, err := Table(DefaultKey, map[string]routes.Fallback{"zlecenia": routes.FallbackNotFound})
	require.NoError(t, err)

	d := routes.NewDispatcher(table)
	p := navigation.NewParser(DefaultKey)

	assert.Equal(t, routes.KindNotFound, d.Dispatch(p.Parse("#/zlecenia/42/edytuj")).Kind)
	assert.Equal(t, routes.KindList, d.Dispatch(p.Parse("#/klienci/42/edytuj")).Kind)
}

func TestTableRejectsUnknownOverride(t *testing.T) {
	_, err := Table(DefaultKey, map[string]routes.Fallback{"hangar": routes.FallbackNotFound})
	assert.Error(t, err)
}

func TestTableRejectsUnknownDefault(t *testing.T) {
	_, err := Table("hangar", nil)
	assert.ErrorIs(t, err, routes.ErrNoDefault)
}

func TestConversationsNewIsCreateView(t *testing.T) {
	table, err := Table(DefaultKey, nil)
	require.NoError(t, err)

	v := routes.NewDispatcher(table).Dispatch(navigation.NewParser(DefaultKey).Parse("#/konwersacje/nowa"))
	assert.Equal(t, routes.KindCreate, v.Kind)
	assert.Equal(t, "New conversation", v.Title)
	assert.Equal(t, navigation.RefNew, v.Resource.Kind)
}

func TestNavEntriesDefaultIsRoot(t *testing.T) {
	entries := NavEntries(DefaultKey)
	require.Len(t, entries, len(Catalog))
	assert.Equal(t, "/", entries[0].Path)

	m, err := sidebar.NewMatcher(entries)
	require.NoError(t, err)

	active := func(path string) []string {
		var out []string
		for _, it := range m.Items(path) {
			if it.Active {
				out = append(out, it.Title)
			}
		}
		return out
	}
	assert.Equal(t, []string{"Dashboard"}, active("/"))
	assert.Equal(t, []string{"Dashboard"}, active("/pulpit"))
	assert.Equal(t, []string{"Clients"}, active("/klienci/42"))
	assert.Equal(t, []string{"Purchase orders"}, active("/dostawcy/3"))
	assert.Empty(t, active("/nieznane"))
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Equal(t, "pulpit", keys[0])
	assert.Contains(t, keys, "konwersacje")
}
