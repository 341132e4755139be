// Package sqlitelex is a reference implementation of the phoneme lookup
// collaborator (settings.PhonemeLookup) backed by a sqlite word->phoneme
// table. It is not imported by the core pipeline, which only depends on the
// callback signature; cmd/gruutd wires it in as one concrete option among
// others an operator could supply.
package sqlitelex

import (
	"database/sql"
	"fmt"

	"github.com/dekarrin/rezi"
	_ "modernc.org/sqlite"
)

// phonemeSeq is the stored form of a word's phoneme sequence: a length
// followed by each phoneme string, encoded with rezi primitives.
type phonemeSeq []string

func (ps phonemeSeq) MarshalBinary() ([]byte, error) {
	data := rezi.EncInt(len(ps))
	for _, p := range ps {
		data = append(data, rezi.EncString(p)...)
	}
	return data, nil
}

func (ps *phonemeSeq) UnmarshalBinary(data []byte) error {
	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("phoneme count: %w", err)
	}
	data = data[n:]

	*ps = nil
	for i := 0; i < count; i++ {
		p, n, err := rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("phoneme %d: %w", i, err)
		}
		data = data[n:]
		*ps = append(*ps, p)
	}
	return nil
}

// Lexicon is a word -> phoneme-sequence table backed by a sqlite database
// file.
type Lexicon struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite-backed lexicon at path.
func Open(path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon db: %w", err)
	}

	lex := &Lexicon{db: db}
	if err := lex.init(); err != nil {
		db.Close()
		return nil, err
	}

	return lex, nil
}

func (lex *Lexicon) init() error {
	_, err := lex.db.Exec(`CREATE TABLE IF NOT EXISTS lexicon (
		word TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		phonemes BLOB NOT NULL,
		PRIMARY KEY (word, role)
	);`)
	if err != nil {
		return fmt.Errorf("init lexicon schema: %w", err)
	}
	return nil
}

// Close closes the underlying sqlite connection.
func (lex *Lexicon) Close() error {
	return lex.db.Close()
}

// Put stores the phoneme sequence for word under the given role ("" for
// role-agnostic entries), overwriting any existing entry.
func (lex *Lexicon) Put(word, role string, phonemes []string) error {
	encoded := rezi.EncBinary(phonemeSeq(phonemes))

	_, err := lex.db.Exec(
		`INSERT INTO lexicon (word, role, phonemes) VALUES (?, ?, ?)
		 ON CONFLICT(word, role) DO UPDATE SET phonemes=excluded.phonemes`,
		word, role, encoded,
	)
	if err != nil {
		return fmt.Errorf("store lexicon entry %q: %w", word, err)
	}
	return nil
}

// Lookup implements settings.PhonemeLookup: it first tries an exact
// (word, role) match, then falls back to the role-agnostic ("") entry.
func (lex *Lexicon) Lookup(word, role string) ([]string, bool) {
	if ph, ok := lex.lookupExact(word, role); ok {
		return ph, true
	}
	if role != "" {
		if ph, ok := lex.lookupExact(word, ""); ok {
			return ph, true
		}
	}
	return nil, false
}

func (lex *Lexicon) lookupExact(word, role string) ([]string, bool) {
	var encoded []byte
	row := lex.db.QueryRow(`SELECT phonemes FROM lexicon WHERE word = ? AND role = ?;`, word, role)
	if err := row.Scan(&encoded); err != nil {
		return nil, false
	}

	var phonemes phonemeSeq
	if _, err := rezi.DecBinary(encoded, &phonemes); err != nil {
		return nil, false
	}

	return []string(phonemes), true
}
