package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CorruptedArk/sudoku-solver-go/puzzle"
)

/*

solve records

*/

// A SolveRecord is the stored form of one solving run.  It is
// JSON serializable so it can go into the cache as well as the
// database.
type SolveRecord struct {
	Id        string    // unique id for this run
	Signature string    // signature of the input board
	Values    []int32   // input values, 0 for empty
	Solution  []int32   // final values, 0 for cells left unresolved
	Solved    bool      // whether the run solved the board
	Guesses   int32     // guess boards attempted
	Rerolls   int32     // enumeration reshuffles
	Elapsed   int64     // solving time in milliseconds
	Created   time.Time // when the run finished
}

// NewSolveRecord assembles the record of a finished solving run.
func NewSolveRecord(input *puzzle.Grid, res puzzle.Result, elapsed time.Duration) *SolveRecord {
	return &SolveRecord{
		Id:        uuid.NewString(),
		Signature: input.Signature(),
		Values:    toInt32s(input.Values()),
		Solution:  toInt32s(res.Grid.Values()),
		Solved:    res.Solved,
		Guesses:   int32(res.Guesses),
		Rerolls:   int32(res.Rerolls),
		Elapsed:   elapsed.Milliseconds(),
		Created:   time.Now(),
	}
}

// key: compute the cache key for a record's solved board.
func (sr *SolveRecord) key() string {
	return "SOL:" + sr.Signature
}

// Save stores the record: every run goes into the database
// history, and solved runs additionally go into the cache so the
// same board is never solved twice.
func (sr *SolveRecord) Save() {
	sr.databaseInsert()
	if sr.Solved {
		sr.cacheInsert()
	}
}

// LookupSolution checks the cache for a solved record with the
// given board signature.  Returns nil on a miss.
func LookupSolution(signature string) *SolveRecord {
	probe := &SolveRecord{Signature: signature}
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", probe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("cache failure loading solve record %q: %v", signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return nil
	}
	var sr *SolveRecord
	if err := json.Unmarshal(bytes, &sr); err != nil {
		panic(fmt.Errorf("failed to unmarshal solve record %q: %v", signature, err))
	}
	if sr.Signature != signature {
		panic(fmt.Errorf("cached solve record (signature %q) found for board %q!",
			sr.Signature, signature))
	}
	return sr
}

// cacheInsert: insert a record into the cache.  Replaces any
// existing record with the same signature.
func (sr *SolveRecord) cacheInsert() {
	bytes, e := json.Marshal(sr)
	if e != nil {
		panic(fmt.Errorf("failed to marshal solve record %q: %v", sr.Signature, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", sr.key(), bytes)
		if err != nil {
			err = fmt.Errorf("cache failure saving solve record %q: %v", sr.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: append a record to the solve history.
func (sr *SolveRecord) databaseInsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx(),
			"INSERT INTO solves (solveId, signature, valueList, solutionList, solved, guesses, rerolls, elapsedMs, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
			sr.Id, sr.Signature, sr.Values, sr.Solution, sr.Solved,
			sr.Guesses, sr.Rerolls, sr.Elapsed, sr.Created)
		if err != nil {
			err = fmt.Errorf("database error saving solve record %q: %v", sr.Signature, err)
		}
		return
	}
	pgExecute(body)
}

// RecentSolves returns the most recent entries of the solve
// history, newest first.
func RecentSolves(limit int) []*SolveRecord {
	var out []*SolveRecord
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx(),
			"SELECT solveId, signature, valueList, solutionList, solved, guesses, rerolls, elapsedMs, created "+
				"FROM solves ORDER BY created DESC LIMIT $1", limit)
		if err != nil {
			return fmt.Errorf("failure listing solve history: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			sr := &SolveRecord{}
			if err := rows.Scan(&sr.Id, &sr.Signature, &sr.Values, &sr.Solution, &sr.Solved,
				&sr.Guesses, &sr.Rerolls, &sr.Elapsed, &sr.Created); err != nil {
				return fmt.Errorf("failure reading solve history: %v", err)
			}
			out = append(out, sr)
		}
		return rows.Err()
	}
	pgExecute(body)
	return out
}

/*

puzzle library

*/

// A PuzzleEntry represents a stored library puzzle.  It is JSON
// serializable so it can go into the cache as well as the
// database.
type PuzzleEntry struct {
	Name    string  // user-facing name of the puzzle
	Values  []int32 // starting values, 0 for empty
	Created time.Time
}

// key: compute the cache key for a PuzzleEntry.
func (pe *PuzzleEntry) key() string {
	return "PUZ:" + pe.Name
}

// MakeGrid builds the board a library entry describes.
func (pe *PuzzleEntry) MakeGrid() *puzzle.Grid {
	g, err := puzzle.New(toInts(pe.Values))
	if err != nil {
		panic(fmt.Errorf("failed to create board %q: %v", pe.Name, err))
	}
	return g
}

// LoadPuzzle first checks the cache, then the database, for the
// named library puzzle.  If it loads from the database, it caches
// the result.  Panics if there is no such stored entry.
func LoadPuzzle(name string) *PuzzleEntry {
	pe := &PuzzleEntry{Name: name}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad()
	pe.cacheInsert()
	return pe
}

// ListPuzzles returns the names of the library puzzles in
// alphabetical order.
func ListPuzzles() []string {
	var names []string
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx(), "SELECT name FROM puzzles ORDER BY name")
		if err != nil {
			return fmt.Errorf("failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("failure reading puzzle names: %v", err)
			}
			names = append(names, name)
		}
		return rows.Err()
	}
	pgExecute(body)
	return names
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *PuzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("cache failure loading puzzle %q: %v", pe.Name, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *PuzzleEntry
	if err := json.Unmarshal(bytes, &spe); err != nil {
		panic(fmt.Errorf("failed to unmarshal puzzle %q: %v", pe.Name, err))
	}
	if spe.Name != pe.Name {
		panic(fmt.Errorf("cached puzzle (name %q) found for puzzle %q!", spe.Name, pe.Name))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Panics
// if there is no saved entry with the given name.
func (pe *PuzzleEntry) databaseLoad() {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx(),
			"SELECT valueList, created FROM puzzles WHERE name = $1", pe.Name)
		if err := row.Scan(&pe.Values, &pe.Created); err != nil {
			return fmt.Errorf("failure looking up puzzle %q: %v", pe.Name, err)
		}
		return nil
	}
	pgExecute(body)
}

// cacheInsert: insert a puzzle entry into the cache.  Replaces
// any existing entry with the same name.
func (pe *PuzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("failed to marshal puzzle %q: %v", pe.Name, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("cache failure saving puzzle %q: %v", pe.Name, err)
		}
		return
	}
	rdExecute(body)
}

/*

helpers

*/

// ctx: storage operations are synchronous and uncancellable, so
// every database call shares the background context.
func ctx() context.Context {
	return context.Background()
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func toInts(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
