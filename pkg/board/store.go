package board

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/byxorna/stackit/pkg/db"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed seed.yaml
	embeddedSeed []byte

	_ db.Backend = (*Store)(nil)
)

// Seed is the on-disk layout of board content.
type Seed struct {
	PopularTags   []string           `yaml:"popularTags"`
	Questions     []seedQuestion     `yaml:"questions"`
	Answers       []seedAnswer       `yaml:"answers"`
	Notifications []seedNotification `yaml:"notifications"`
}

// seed records may give an age in place of a creation time.
type seedQuestion struct {
	Age         time.Duration `yaml:"age,omitempty"`
	v1.Question `yaml:",inline"`
}

type seedAnswer struct {
	Age       time.Duration `yaml:"age,omitempty"`
	v1.Answer `yaml:",inline"`
}

type seedNotification struct {
	Age             time.Duration `yaml:"age,omitempty"`
	v1.Notification `yaml:",inline"`
}

// Store keeps the board in memory. It is seeded from the embedded seed, or
// from SeedFile when one is configured, and can follow changes to that file.
type Store struct {
	*sync.Mutex

	SeedFile string `yaml:"seedFile" validate:"omitempty,file"`

	status        v1.SyncStatus
	questions     []*v1.Question
	answers       map[v1.ID][]*v1.Answer
	notifications []v1.Notification
	popularTags   []string
	now           func() time.Time
}

// New loads the store from seedFile, or from the embedded seed when seedFile
// is empty.
func New(seedFile string) (*Store, error) {
	s := newStore(time.Now)
	if seedFile != "" {
		expandedPath, err := homedir.Expand(seedFile)
		if err != nil {
			return nil, err
		}
		s.SeedFile = expandedPath
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("error validating store: %w", err)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromReader loads a store from seed YAML, placing aged records relative
// to now. The result has no file to watch.
func NewFromReader(r io.Reader, now time.Time) (*Store, error) {
	s := newStore(func() time.Time { return now })
	if err := s.load(r); err != nil {
		return nil, err
	}
	return s, nil
}

func newStore(now func() time.Time) *Store {
	return &Store{
		Mutex:   &sync.Mutex{},
		status:  v1.StatusUninitialized,
		answers: map[v1.ID][]*v1.Answer{},
		now:     now,
	}
}

func (x *Store) Validate() error {
	validate := validator.New()
	return validate.Struct(*x)
}

// Reload replaces the store's content with a fresh read of its seed. Anything
// added since the last load is dropped.
func (x *Store) Reload() error {
	if x.SeedFile == "" {
		return x.load(bytes.NewReader(embeddedSeed))
	}

	f, err := os.Open(x.SeedFile)
	if err != nil {
		x.setStatus(v1.StatusError)
		return fmt.Errorf("unable to open %s: %w", x.SeedFile, err)
	}
	defer f.Close()

	if err := x.load(f); err != nil {
		return fmt.Errorf("unable to load %s: %w", x.SeedFile, err)
	}
	slog.Info("loaded board", "file", x.SeedFile, "questions", len(x.Questions()))
	return nil
}

func (x *Store) load(r io.Reader) error {
	x.setStatus(v1.StatusSynchronizing)

	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		x.setStatus(v1.StatusError)
		return fmt.Errorf("unable to deserialize seed: %w", err)
	}

	now := x.now()
	questions := make([]*v1.Question, 0, len(seed.Questions))
	answers := map[v1.ID][]*v1.Answer{}
	notifications := make([]v1.Notification, 0, len(seed.Notifications))
	known := map[v1.ID]bool{}

	for i := range seed.Questions {
		q := seed.Questions[i].Question
		if q.Metadata.CreationTimestamp.IsZero() {
			q.Metadata.CreationTimestamp = now.Add(-seed.Questions[i].Age)
		}
		if err := q.Validate(); err != nil {
			x.setStatus(v1.StatusError)
			return err
		}
		if known[q.Metadata.ID] {
			x.setStatus(v1.StatusError)
			return fmt.Errorf("duplicate question %s", q.Metadata.ID)
		}
		known[q.Metadata.ID] = true
		questions = append(questions, &q)
	}

	for i := range seed.Answers {
		a := seed.Answers[i].Answer
		if a.Metadata.CreationTimestamp.IsZero() {
			a.Metadata.CreationTimestamp = now.Add(-seed.Answers[i].Age)
		}
		if err := a.Validate(); err != nil {
			x.setStatus(v1.StatusError)
			return err
		}
		if !known[a.Metadata.QuestionID] {
			x.setStatus(v1.StatusError)
			return fmt.Errorf("answer %s: question %s: %w", a.Metadata.ID, a.Metadata.QuestionID, db.ErrNoQuestionFound)
		}
		answers[a.Metadata.QuestionID] = append(answers[a.Metadata.QuestionID], &a)
	}

	for i := range seed.Notifications {
		n := seed.Notifications[i].Notification
		if n.CreationTimestamp.IsZero() {
			n.CreationTimestamp = now.Add(-seed.Notifications[i].Age)
		}
		if err := n.Validate(); err != nil {
			x.setStatus(v1.StatusError)
			return err
		}
		notifications = append(notifications, n)
	}

	x.Lock()
	defer x.Unlock()
	x.questions = questions
	x.answers = answers
	x.notifications = notifications
	x.popularTags = seed.PopularTags
	x.status = v1.StatusOK
	return nil
}

func (x *Store) setStatus(s v1.SyncStatus) {
	x.Lock()
	defer x.Unlock()
	x.status = s
}

func (x *Store) Status() v1.SyncStatus {
	x.Lock()
	defer x.Unlock()
	return x.status
}

// StoragePath is the seed file backing the store, empty for the embedded seed.
func (x *Store) StoragePath() string {
	return x.SeedFile
}
