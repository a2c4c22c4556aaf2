package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"howitworks/internal/steps"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := writeContent(t, "steps.yaml", germanYAML)
	store, err := NewStore(path)
	require.NoError(t, err)

	reloaded := make(chan steps.Section, 8)
	store.OnReload(func(sec steps.Section) { reloaded <- sec })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, store)
	require.NoError(t, err)

	updated := germanYAML + `  - number: "03"
    title: "Erledigen"
    description: "Abhaken."
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	select {
	case sec := <-reloaded:
		assert.Equal(t, 3, sec.Steps.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("content was not reloaded after write")
	}
	assert.Equal(t, "Erledigen", store.Section().Steps.At(2).Title)

	require.NoError(t, w.Close())
}

func TestWatch_ReloadsOnAtomicReplace(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := writeContent(t, "steps.yaml", germanYAML)
	store, err := NewStore(path)
	require.NoError(t, err)

	reloaded := make(chan steps.Section, 8)
	store.OnReload(func(sec steps.Section) { reloaded <- sec })

	w, err := Watch(context.Background(), store)
	require.NoError(t, err)

	tmp := filepath.Join(filepath.Dir(path), ".steps.yaml.tmp")
	updated := germanYAML + `  - number: "03"
    title: "Ersetzt"
    description: "Per Umbenennung."
`
	require.NoError(t, os.WriteFile(tmp, []byte(updated), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case sec := <-reloaded:
		assert.Equal(t, "Ersetzt", sec.Steps.At(2).Title)
	case <-time.After(5 * time.Second):
		t.Fatal("content was not reloaded after an atomic replace")
	}

	require.NoError(t, w.Close())
}

func TestWatch_RenameAwayKeepsSection(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := writeContent(t, "steps.yaml", germanYAML)
	store, err := NewStore(path)
	require.NoError(t, err)
	before := store.Section()

	reloaded := make(chan struct{}, 1)
	store.OnReload(func(steps.Section) { reloaded <- struct{}{} })

	w, err := Watch(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, os.Rename(path, path+".old"))

	select {
	case <-reloaded:
		t.Fatal("moving the content file away triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
	assert.Equal(t, before.Steps.Len(), store.Section().Steps.Len())

	require.NoError(t, w.Close())
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := writeContent(t, "steps.json", stepsJSON)
	store, err := NewStore(path)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 1)
	store.OnReload(func(steps.Section) { reloaded <- struct{}{} })

	w, err := Watch(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path+".bak", []byte("noise"), 0644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, w.Close())
}

func TestWatch_RequiresPath(t *testing.T) {
	store := NewStaticStore(steps.DefaultSection())
	_, err := Watch(context.Background(), store)
	assert.Error(t, err)
}
