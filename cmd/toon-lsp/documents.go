package main

import (
	"context"
	"fmt"
	"sync"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// scheduleCount queues a debounced token count for the document and
// reports the result as a window/logMessage notification.  Counts for
// superseded edits never fire.
func (s *Server) scheduleCount(uri, content string) {
	sess := s.counts.Get(uri, func(n int) {
		if s.conn == nil {
			return
		}
		s.conn.Notify(context.Background(), protocol.MethodWindowLogMessage, &protocol.LogMessageParams{
			Type:    protocol.MessageTypeLog,
			Message: fmt.Sprintf("%s: ~%d tokens", uri, n),
		})
	})
	sess.Schedule(content)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.scheduleCount(uri, params.TextDocument.Text)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}

	// Apply changes.  The server advertises incremental sync, so every
	// change is a ranged edit; a zero range is an edit at the start of
	// the document, not a full replacement.  An offset equal to the
	// document length is a valid append position.
	content := doc.content
	for _, change := range params.ContentChanges {
		start := change.Range.Start
		end := change.Range.End
		contentRunes := []rune(content)
		startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
		endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
		if startOffset <= endOffset && endOffset <= len(contentRunes) {
			content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
		}
	}

	s.docs.put(uri, content, params.TextDocument.Version)
	s.scheduleCount(uri, content)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.counts.Remove(uri)
	s.docs.remove(uri)
	return nil
}

// lineColToOffset maps a line/column position to a rune offset.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	offset := 0
	for _, r := range content {
		if currentLine == line && currentCol == col {
			return offset
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
		offset++
	}
	return offset
}
