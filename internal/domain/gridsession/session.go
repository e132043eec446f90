// Package gridsession tracks the state of one quiz game: which tiles
// are closed, which questions were answered correctly, the shuffled
// queue of questions not yet shown, and the retry pool of questions
// missed at least once.
package gridsession

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/question"
)

// TileStatus is the lifecycle state of one grid tile. The only
// transition is unused → correct; a correctly answered tile is
// permanently closed.
type TileStatus string

const (
	TileUnused  TileStatus = "unused"
	TileCorrect TileStatus = "correct"
)

var (
	ErrUnknownQuestion = errors.New("question not in session")
	ErrTileOutOfRange  = errors.New("tile index out of range")
)

// AnswerResult is what RecordAnswer reports back to the caller.
type AnswerResult struct {
	Correct     bool
	AnswerIndex int
}

// Session is the state of one game. All mutation goes through PickNext
// and RecordAnswer; nothing is exposed as shared mutable state. The
// mutex is here because HTTP handlers may touch one session
// concurrently, not because the state machine needs it.
type Session struct {
	mu sync.Mutex

	questions map[int]question.Question
	ids       []int // ids in load order, for the exhausted-pools fallback

	tileStatus  []TileStatus
	correctIDs  map[int]struct{}
	unusedQueue []int
	retryPool   []int
}

// New creates a session over the full loaded question set. The unused
// queue starts as a random permutation of all question ids. tiles <= 0
// means one tile per question.
func New(questions []question.Question, tiles int) *Session {
	if tiles <= 0 {
		tiles = len(questions)
	}

	s := &Session{
		questions:  make(map[int]question.Question, len(questions)),
		ids:        make([]int, 0, len(questions)),
		tileStatus: make([]TileStatus, tiles),
		correctIDs: make(map[int]struct{}),
	}
	for i := range s.tileStatus {
		s.tileStatus[i] = TileUnused
	}
	for _, q := range questions {
		s.questions[q.ID] = q
		s.ids = append(s.ids, q.ID)
	}

	s.unusedQueue = append([]int(nil), s.ids...)
	rand.Shuffle(len(s.unusedQueue), func(i, j int) {
		s.unusedQueue[i], s.unusedQueue[j] = s.unusedQueue[j], s.unusedQueue[i]
	})

	return s
}

// PickNext selects the next question to show, in strict priority
// order: the front of the unused queue; else a uniform pick from the
// retry pool (skipping ids answered correctly since they were pooled);
// else, with everything solved, a uniform pick from the full set as a
// harmless fallback. Only the queue case mutates state. Returns false
// when the session holds no questions at all.
func (s *Session) PickNext() (question.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.unusedQueue) > 0 {
		id := s.unusedQueue[0]
		s.unusedQueue = s.unusedQueue[1:]
		return s.questions[id], true
	}

	var retry []int
	for _, id := range s.retryPool {
		if _, solved := s.correctIDs[id]; !solved {
			retry = append(retry, id)
		}
	}
	if len(retry) > 0 {
		return s.questions[retry[rand.Intn(len(retry))]], true
	}

	if len(s.ids) == 0 {
		return question.Question{}, false
	}
	return s.questions[s.ids[rand.Intn(len(s.ids))]], true
}

// RecordAnswer grades chosenIndex against the question's answer key
// and updates tile and pool state. On a correct answer the tile is
// closed (idempotently), the id joins correctIDs and leaves the retry
// pool. On an incorrect answer the id joins the retry pool unless it
// is already there.
func (s *Session) RecordAnswer(tileIndex, questionID, chosenIndex int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[questionID]
	if !ok {
		return AnswerResult{}, ErrUnknownQuestion
	}
	if tileIndex < 0 || tileIndex >= len(s.tileStatus) {
		return AnswerResult{}, ErrTileOutOfRange
	}

	result := AnswerResult{
		Correct:     chosenIndex == q.AnswerIndex,
		AnswerIndex: q.AnswerIndex,
	}

	if result.Correct {
		s.tileStatus[tileIndex] = TileCorrect
		s.correctIDs[questionID] = struct{}{}
		s.retryPool = removeID(s.retryPool, questionID)
	} else if !containsID(s.retryPool, questionID) {
		s.retryPool = append(s.retryPool, questionID)
	}

	return result, nil
}

// Question looks up a loaded question by id.
func (s *Session) Question(id int) (question.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	return q, ok
}

// Tiles returns a copy of the per-tile statuses.
func (s *Session) Tiles() []TileStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TileStatus(nil), s.tileStatus...)
}

// Solved returns how many questions have been answered correctly.
func (s *Session) Solved() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.correctIDs)
}

// Total returns how many questions the session was created with.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Remaining returns how many questions have not yet been answered
// correctly.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids) - len(s.correctIDs)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
