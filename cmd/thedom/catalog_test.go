package main

import (
	"bytes"
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"
)

func TestWriteSchema(t *testing.T) {
	props := node.NewPropertySet().
		Attribute("size", schema.Int()).
		Attribute("classes", schema.Slice(schema.String())).
		Event("onclick")

	var buf bytes.Buffer
	require.NoError(t, writeSchema(&buf, props))

	var got schema.Schema
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "int", got["size"].Name())
	assert.Equal(t, "[string]", got["classes"].Name())
	assert.Equal(t, "string", got["onclick"].Name())
}
