package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInternalIPRange(t *testing.T) {
	dt, err := Load("Internal IP Range")
	require.NoError(t, err)

	assert.Equal(t, "Internal IP Range", dt.Name)
	assert.Equal(t, "TrackFlow", dt.Module)
	assert.True(t, dt.IsTable)
	assert.False(t, dt.AllowRename)
	assert.Equal(t, "InnoDB", dt.Engine)
	assert.Equal(t, "modified", dt.SortField)
	assert.Equal(t, "DESC", dt.SortOrder)

	require.Len(t, dt.Fields, 2)
	assert.Equal(t, "ip_range", dt.Fields[0].Fieldname)
	assert.True(t, dt.Fields[0].Reqd)
	assert.Equal(t, 1, dt.Fields[0].Idx)
	assert.Equal(t, "description", dt.Fields[1].Fieldname)
	assert.False(t, dt.Fields[1].Reqd)
}

func TestLoadUnknownDefinition(t *testing.T) {
	_, err := Load("No Such DocType")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no embedded definition")
}
