/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package openingbook is intentionally a disabled stub. Opening book support
// is out of scope for this engine - the search driver still carries the
// plumbing to look up a book move before starting an iterative deepening
// search, but no entries are ever loaded, so GetEntry never finds a move and
// the search always falls through to normal search. config.Settings.Search.UseBook
// defaults to false so the lookup path is not even attempted.
package openingbook

import (
	"fmt"

	"github.com/samnelson/topas/internal/position"
)

// BookFormat identifies the on-disk notation a book file would use.
type BookFormat int

const (
	Simple BookFormat = iota
	San
	Pgn
)

// FormatFromString maps the config file / cmd line spelling of a book
// format to its BookFormat constant.
var FormatFromString = map[string]BookFormat{
	"Simple": Simple,
	"San":    San,
	"Pgn":    Pgn,
}

// BookMove is a single candidate move stored for a book position. Move is
// kept as a raw uint32 so callers convert it to types.Move explicitly.
type BookMove struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry groups all known book moves for one Zobrist key.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []BookMove
}

// Book is an in-memory opening book keyed by Zobrist position hash.
// It is never populated in this build; see package doc.
type Book struct {
	entries map[position.Key]BookEntry
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{entries: make(map[position.Key]BookEntry)}
}

// Initialize would load book moves from bookPath/bookFile in the given
// format. Loading book files is out of scope, so this always reports that
// no book could be loaded and leaves the book empty.
func (b *Book) Initialize(bookPath string, bookFile string, format BookFormat, useCache bool, recreateCache bool) error {
	return fmt.Errorf("opening book support is not built into this engine: %s/%s", bookPath, bookFile)
}

// GetEntry looks up the book entry for the given Zobrist key. Always
// reports not-found since no book is ever loaded.
func (b *Book) GetEntry(key position.Key) (BookEntry, bool) {
	e, found := b.entries[key]
	return e, found
}

// NumberOfEntries returns how many positions the book currently holds.
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// Reset empties the book.
func (b *Book) Reset() {
	b.entries = make(map[position.Key]BookEntry)
}
