package lsp

import (
	"testing"

	"github.com/auvred/regsyntax/lint"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gotest.tools/v3/assert"
)

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func newContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method, params.(protocol.PublishDiagnosticsParams)})
		},
	}
}

func TestToProtocol(t *testing.T) {
	out := toProtocol([]lint.Diagnostic{{Line: 3, Column: 5, Message: "boom"}})
	assert.Equal(t, len(out), 1)
	d := out[0]
	assert.Equal(t, d.Range.Start, protocol.Position{Line: 2, Character: 5})
	assert.Equal(t, d.Range.End, protocol.Position{Line: 2, Character: 6})
	assert.Equal(t, *d.Severity, protocol.DiagnosticSeverityError)
	assert.Equal(t, *d.Source, "regsyntax")
	assert.Equal(t, d.Message, "boom")

	empty := toProtocol(nil)
	assert.Assert(t, empty != nil)
	assert.Equal(t, len(empty), 0)
}

func TestDocumentLifecycle(t *testing.T) {
	const uri = "file:///tmp/patterns.regex"
	ls := NewServer("test", lint.Config{})
	var sent []notification
	ctx := newContext(&sent)

	assert.NilError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "/a/\n/[z-a]/\n"},
	}))
	assert.Equal(t, len(sent), 1)
	assert.Equal(t, sent[0].method, protocol.ServerTextDocumentPublishDiagnostics)
	assert.Equal(t, sent[0].params.URI, uri)
	assert.Equal(t, len(sent[0].params.Diagnostics), 1)
	assert.Equal(t, sent[0].params.Diagnostics[0].Range.Start, protocol.Position{Line: 1, Character: 5})

	assert.NilError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "/(/\n"}},
	}))
	assert.Equal(t, len(sent), 2)
	assert.Equal(t, sent[1].params.Diagnostics[0].Message,
		"Invalid regular expression: /(/: Unterminated group")

	// Saving without text re-checks the stored document.
	assert.NilError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Equal(t, len(sent), 3)
	assert.Equal(t, len(sent[2].params.Diagnostics), 1)

	fixed := "/()/\n"
	assert.NilError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Text:         &fixed,
	}))
	assert.Equal(t, len(sent), 4)
	assert.Equal(t, len(sent[3].params.Diagnostics), 0)

	assert.NilError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Equal(t, len(sent), 5)
	assert.Assert(t, sent[4].params.Diagnostics != nil)
	assert.Equal(t, len(sent[4].params.Diagnostics), 0)

	// A closed document is not re-checked on save.
	assert.NilError(t, ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Equal(t, len(sent), 5)
}

func TestInitialize(t *testing.T) {
	ls := NewServer("1.2.3", lint.Config{})
	res, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{})
	assert.NilError(t, err)
	result := res.(protocol.InitializeResult)
	assert.Equal(t, result.ServerInfo.Name, "regsyntax")
	assert.Equal(t, *result.ServerInfo.Version, "1.2.3")
	sync := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	assert.Assert(t, *sync.OpenClose)
}
