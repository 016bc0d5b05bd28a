// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Kind: which mini-game a session belongs to.
//   - Session: server-side state for one generated game awaiting grading.
//
// A Session mixes the public half (already sent to the client, kept only to
// echo back in the final result) with the secret answer key. The secret half
// must never appear in a generate response.

package game

import "time"

// Kind identifies one of the four mini-games.
type Kind string

const (
	KindReadingMission Kind = "reading_mission"
	KindHoaxQuiz       Kind = "hoax_quiz"
	KindLibraryBlanks  Kind = "library_blanks"
	KindGrammarFix     Kind = "grammar_fix"
)

// Session holds the state of a single game instance between its generate
// call and its one validate/check call. Fields are populated per Kind.
type Session struct {
	ID        string    // Opaque single-use identifier (uuid4), client-visible.
	Kind      Kind      // Which mini-game this session belongs to.
	CreatedAt time.Time // Creation time; the store evicts on TTL from here.

	// Reading mission
	Title     string   // Mission topic; echoed in the final report.
	Questions []string // Comprehension questions shown to the client.

	// Secret answer key: ideal answers (mission), verified keywords in
	// blanking order (library), or corrected sentences (grammar).
	Answers []string

	// Hoax quiz
	IsHoax      bool   // Whether the generated snippet is a hoax.
	Explanation string // Why it is (or is not) a hoax.
	SourceURL   string // Source or debunk URL; "N/A" when not relevant.

	// Library blanks
	FullText string // Complete generated text; blanked on read, echoed on validate.

	// Grammar fix
	Sentences []string // Sentences as shown to the client, some deliberately broken.
}
