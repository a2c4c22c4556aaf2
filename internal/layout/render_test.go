package layout

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"howitworks/internal/steps"
)

func sequenceOf(n int) steps.Sequence {
	records := make([]steps.Record, n)
	for i := range records {
		records[i] = steps.Record{
			Number:      fmt.Sprintf("%02d", i+1),
			Title:       fmt.Sprintf("Step %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
		}
	}
	return steps.NewSequence(records...)
}

func TestRender_CountsForAnyLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 9} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tree := Render(sequenceOf(n))

			assert.Equal(t, 1, tree.HeaderCount())
			assert.Len(t, tree.Rows, n)
			assert.Equal(t, n, tree.DotCount())
			if n == 0 {
				assert.Equal(t, 0, tree.ConnectorCount())
				assert.Nil(t, tree.Connector)
			} else {
				assert.Equal(t, 1, tree.ConnectorCount())
				assert.Equal(t, n, tree.Connector.Spans)
			}

			for i, row := range tree.Rows {
				assert.Equal(t, i, row.Index)
				assert.Equal(t, fmt.Sprintf("Step %d", i+1), row.Card.Title)
				assert.Equal(t, row.Side, row.Card.Side)
				assert.Equal(t, row.Side.Opposite(), row.Spacer.Side)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	for _, seq := range []steps.Sequence{steps.Default(), sequenceOf(0), sequenceOf(7)} {
		first := Render(seq)
		second := Render(seq)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Render is not idempotent (-first +second):\n%s", diff)
		}
	}
}

func TestRender_SideAlternation(t *testing.T) {
	tree := Render(sequenceOf(6))
	for i, row := range tree.Rows {
		if i%2 == 0 {
			assert.Equal(t, steps.Left, row.Side, "row %d", i)
			assert.Equal(t, AlignRight, row.Card.WideAlign, "row %d", i)
		} else {
			assert.Equal(t, steps.Right, row.Side, "row %d", i)
			assert.Equal(t, AlignLeft, row.Card.WideAlign, "row %d", i)
		}
		assert.Equal(t, AlignLeft, row.Card.NarrowAlign, "row %d", i)
	}
}

func TestRender_Empty(t *testing.T) {
	var tree Tree
	require.NotPanics(t, func() {
		tree = Render(steps.NewSequence())
	})

	assert.Equal(t, steps.DefaultTitle, tree.Header.Title)
	assert.Equal(t, steps.DefaultSubtitle, tree.Header.Subtitle)
	assert.Empty(t, tree.Rows)
	assert.Equal(t, 0, tree.ConnectorCount())
	assert.Equal(t, 0, tree.DotCount())
}

func TestRender_DefaultContent(t *testing.T) {
	tree := Render(steps.Default())

	require.Len(t, tree.Rows, 4)
	assert.Equal(t, []steps.Side{steps.Left, steps.Right, steps.Left, steps.Right}, tree.Sides())
	assert.Equal(t, 4, tree.DotCount())
	assert.Equal(t, 1, tree.ConnectorCount())

	wantTitles := []string{"Create tasks", "Organize and prioritize", "Track progress", "Accomplish more"}
	for i, want := range wantTitles {
		assert.Equal(t, want, tree.Rows[i].Card.Title)
		assert.Equal(t, fmt.Sprintf("%02d", i+1), tree.Rows[i].Card.Number)
	}
}

func TestRender_SingleRecord(t *testing.T) {
	tree := Render(sequenceOf(1))

	require.Len(t, tree.Rows, 1)
	assert.Equal(t, steps.Left, tree.Rows[0].Side)
	assert.Equal(t, 1, tree.DotCount())
	assert.Equal(t, 1, tree.ConnectorCount())
	assert.Equal(t, 1, tree.HeaderCount())
}

func TestRender_DotStacksAboveCard(t *testing.T) {
	tree := Render(steps.Default())
	for _, row := range tree.Rows {
		assert.Greater(t, row.Dot.Z, row.Card.Z)
	}
}

func TestRenderSection_UsesGivenHeader(t *testing.T) {
	sec := steps.Section{
		Header: steps.Header{Title: "So funktioniert's", Subtitle: "In vier Schritten"},
		Steps:  sequenceOf(2),
	}
	tree := RenderSection(sec)
	assert.Equal(t, "So funktioniert's", tree.Header.Title)
	assert.Equal(t, "In vier Schritten", tree.Header.Subtitle)
	assert.Len(t, tree.Rows, 2)
}

func TestRender_ConcurrentCallsShareSequence(t *testing.T) {
	seq := steps.Default()
	want := Render(seq)

	var wg sync.WaitGroup
	results := make([]Tree, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Render(seq)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.True(t, cmp.Equal(want, got), "result %d differs", i)
	}
}

func TestVisibleAt(t *testing.T) {
	bp := DefaultBreakpoint()
	tree := Render(steps.Default())

	wide := tree.VisibleAt(bp, 120)
	assert.Equal(t, Visible{Wide: true, Columns: 2, Header: true, Connector: true, Cards: 4, Spacers: 4, Dots: 4}, wide)

	atThreshold := tree.VisibleAt(bp, bp.Columns)
	assert.True(t, atThreshold.Wide)

	narrow := tree.VisibleAt(bp, bp.Columns-1)
	assert.Equal(t, Visible{Wide: false, Columns: 1, Header: true, Connector: false, Cards: 4, Spacers: 0, Dots: 0}, narrow)

	empty := Render(steps.NewSequence()).VisibleAt(bp, 200)
	assert.Equal(t, Visible{Wide: true, Columns: 2, Header: true}, empty)
}

func TestTree_JSON(t *testing.T) {
	data, err := json.Marshal(Render(sequenceOf(0)))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "connector")
	assert.Contains(t, string(data), `"rows":[]`)

	data, err = json.Marshal(Render(sequenceOf(2)))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	rows := decoded["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "left", rows[0].(map[string]any)["side"])
	assert.Equal(t, "right", rows[1].(map[string]any)["side"])
	assert.Equal(t, "wide-only", decoded["connector"].(map[string]any)["visibility"])
}

func TestTree_JSONRoundTrip(t *testing.T) {
	want := Render(steps.Default())
	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got Tree
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree changed after JSON round trip (-want +got):\n%s", diff)
	}
}
