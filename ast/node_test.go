package ast

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	return NewProgram(
		NewCallExpression("add",
			NewNumberLiteral("1"),
			NewCallExpression("concat", NewStringLiteral("a"), NewStringLiteral("")),
		),
		NewNumberLiteral("42"),
	)
}

func TestNode(t *testing.T) {
	node := NewNumberLiteral("1")
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())

	err := node.Push(NewNumberLiteral("2"))
	assert.Error(t, err)
}

func TestNodeCallExpression(t *testing.T) {
	call := NewCallExpression("add")
	assert.True(t, call.IsVector())
	assert.Equal(t, "add", call.Name())
	assert.Empty(t, call.Params())
	assert.Nil(t, call.Body())

	assert.NoError(t, call.Push(NewNumberLiteral("1")))
	assert.NoError(t, call.Push(NewStringLiteral("b")))

	params := call.Params()
	require.Len(t, params, 2)
	assert.Equal(t, NodeTypeNumberLiteral, params[0].Type())
	assert.Equal(t, "1", params[0].Value())
	assert.Equal(t, NodeTypeStringLiteral, params[1].Type())
	assert.Equal(t, "b", params[1].Value())

	assert.Equal(t, "(CallExpression add)[2]", call.String())
}

func TestNodeProgramOwnsCopy(t *testing.T) {
	body := []*Node{NewNumberLiteral("1")}
	program := NewProgram(body...)

	body[0] = NewNumberLiteral("2")
	assert.Equal(t, "1", program.Body()[0].Value())
	assert.Nil(t, program.Params())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(sampleTree(), sampleTree()))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(sampleTree(), nil))

	assert.False(t, Equal(NewNumberLiteral("1"), NewStringLiteral("1")))
	assert.False(t, Equal(NewCallExpression("a"), NewCallExpression("b")))
	assert.False(t, Equal(
		NewCallExpression("a", NewNumberLiteral("1")),
		NewCallExpression("a", NewNumberLiteral("1"), NewNumberLiteral("2")),
	))
}

func TestWalk(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(n *Node) bool {
		visited = append(visited, n.Type().String())
		return true
	})
	assert.Equal(t, []string{
		"Program",
		"CallExpression",
		"NumberLiteral",
		"CallExpression",
		"StringLiteral",
		"StringLiteral",
		"NumberLiteral",
	}, visited)

	calls := 0
	Walk(sampleTree(), func(n *Node) bool {
		if n.Type() == NodeTypeCallExpression {
			calls++
			return false
		}
		return true
	})
	assert.Equal(t, 1, calls)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, `(add 1 (concat "a" "")) 42`, string(Encode(sampleTree())))
	assert.Equal(t, ``, string(Encode(NewProgram())))
	assert.Equal(t, `(now)`, string(Encode(NewCallExpression("now"))))
	assert.Equal(t, `:nil`, string(Encode(nil)))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, sampleTree())

	expected := "(Program)\n" +
		"    (CallExpression): add\n" +
		"        (NumberLiteral): \"1\"\n" +
		"        (CallExpression): concat\n" +
		"            (StringLiteral): \"a\"\n" +
		"            (StringLiteral): \"\"\n" +
		"    (NumberLiteral): \"42\"\n"
	assert.Equal(t, expected, buf.String())
}

func TestEncodeXML(t *testing.T) {
	tree := NewProgram(
		NewCallExpression("cmp", NewStringLiteral("a<b & c"), NewNumberLiteral("7")),
	)

	expected := "<program>\n" +
		"  <call name=\"cmp\">\n" +
		"    <string>a&lt;b &amp; c</string>\n" +
		"    <number>7</number>\n" +
		"  </call>\n" +
		"</program>\n"
	assert.Equal(t, expected, string(EncodeXML(tree)))
}

func TestMarshalJSON(t *testing.T) {
	buf, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	expected := `{"type":"Program","body":[` +
		`{"type":"CallExpression","name":"add","params":[` +
		`{"type":"NumberLiteral","value":"1"},` +
		`{"type":"CallExpression","name":"concat","params":[` +
		`{"type":"StringLiteral","value":"a"},` +
		`{"type":"StringLiteral","value":""}]}]},` +
		`{"type":"NumberLiteral","value":"42"}]}`
	assert.JSONEq(t, expected, string(buf))

	buf, err = json.Marshal(NewProgram())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Program","body":[]}`, string(buf))

	_, err = json.Marshal(&Node{})
	assert.Error(t, err)
}
