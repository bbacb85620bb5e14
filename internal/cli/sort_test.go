package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Flyrell/ulidkit/internal/order"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	earlyULID = "01AN4Z07BY79KA1307SR9X4MV3"
	lateULID  = "01AN4Z07BZ79KA1307SR9X4MV4"
)

func TestSortStrings(t *testing.T) {
	cmd, stdout := testCmd(formatText)

	require.NoError(t, runSort(cmd, []any{lateULID, "garbage", earlyULID}, "", order.Options{}))
	assert.Equal(t, "garbage\n"+earlyULID+"\n"+lateULID+"\n", stdout.String())
}

func TestSortReverse(t *testing.T) {
	cmd, stdout := testCmd(formatText)

	require.NoError(t, runSort(cmd, []any{earlyULID, lateULID, "garbage"}, "", order.Options{Reverse: true}))
	assert.Equal(t, lateULID+"\n"+earlyULID+"\ngarbage\n", stdout.String())
}

func TestSortRecordsByColumn(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)
	items := []any{
		value.New("id", lateULID, "name", "second"),
		value.New("name", "missing"),
		value.New("id", earlyULID, "name", "first"),
	}

	require.NoError(t, runSort(cmd, items, "id", order.Options{}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0]["name"])
	assert.Equal(t, "second", got[1]["name"])
	assert.Equal(t, "missing", got[2]["name"])
}

func TestSortKeepsRecordKeyOrder(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)
	items := []any{value.New("name", "only", "id", earlyULID)}

	require.NoError(t, runSort(cmd, items, "id", order.Options{}))
	assert.JSONEq(t, `[{"name":"only","id":"`+earlyULID+`"}]`, stdout.String())
	assert.Less(t, strings.Index(stdout.String(), `"name"`), strings.Index(stdout.String(), `"id"`))
}

func TestSortFromStdinJSON(t *testing.T) {
	stdin := `[{"id":"` + lateULID + `"},{"id":"` + earlyULID + `"}]`
	stdout, _, err := execRoot(t, stdin, "sort", "--column", "id", "-o", "json")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"`+earlyULID+`"},{"id":"`+lateULID+`"}]`, stdout)
}

func TestSortEmpty(t *testing.T) {
	stdout, _, err := execRoot(t, "", "sort", "-o", "json")

	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}
