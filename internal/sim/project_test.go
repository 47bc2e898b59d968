package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/progracyd/debugblocker/internal/token"
)

func TestProjectFields_KeepsOnlySelectedFieldsInOrder(t *testing.T) {
	table := token.Table{{10, 20, 30, 40}}
	fieldIDs := token.FieldTable{{0, 1, 0, 2}}

	proj, projFields := ProjectFields(fieldSet([]int{0, 2}), table, fieldIDs)

	require.Equal(t, token.Table{{10, 30, 40}}, proj)
	require.Equal(t, token.FieldTable{{0, 0, 2}}, projFields)
}

func TestProjectFields_RecordCanBecomeEmpty(t *testing.T) {
	table := token.Table{{10, 20}}
	fieldIDs := token.FieldTable{{1, 1}}

	proj, projFields := ProjectFields(fieldSet([]int{0}), table, fieldIDs)

	require.Equal(t, []int{}, proj[0])
	require.Equal(t, []int{}, projFields[0])
}

func TestProjectFields_PreservesRecordCount(t *testing.T) {
	table := token.Table{{1}, {2, 3}, {}}
	fieldIDs := token.FieldTable{{0}, {0, 1}, {}}

	proj, projFields := ProjectFields(fieldSet([]int{0, 1}), table, fieldIDs)

	require.Len(t, proj, 3)
	require.Len(t, projFields, 3)
}
