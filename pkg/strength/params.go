// pkg/strength/params.go

package strength

// Params carries every tunable the evaluator uses: pattern severities, the
// score scale, category thresholds, attack tiers and the reference word list.
// Build it once at startup (DefaultParams or config overlay) and treat it as
// read-only; the evaluator never mutates it.
type Params struct {
	// Severities maps a finding kind to its penalty weight in entropy bits.
	Severities map[FindingKind]float64

	// FullScoreBits is the entropy level mapped to a composite score of 100
	// before penalties.
	FullScoreBits float64 `validate:"gt=0"`

	// PenaltyCap bounds the total score deduction taken from findings, so a
	// pathological password cannot drive the pre-clamp score arbitrarily low.
	PenaltyCap float64 `validate:"gte=0"`

	// Tiers are the assumed adversary guess-rate scenarios, reported in
	// declaration order.
	Tiers []AttackTier `validate:"min=1,dive"`

	// UncrackableSeconds is the clamp horizon: estimates beyond it collapse
	// to the "effectively uncrackable" sentinel.
	UncrackableSeconds float64 `validate:"gt=0"`

	// Words is the reference list for the dictionary rule. Entries shorter
	// than four runes are ignored by the detector.
	Words []string `validate:"min=1"`
}

// AttackTier is one guess-rate scenario for crack-time estimation.
type AttackTier struct {
	Name             string  `mapstructure:"name" validate:"required"`
	GuessesPerSecond float64 `mapstructure:"guesses_per_second" validate:"gt=0"`
}

// Category thresholds are fixed, not part of Params: the boundaries are a
// documented contract (see Category) and tests pin them exactly.

// defaultWords is the built-in reference list. Deliberately short: this is a
// weakness heuristic, not a cracking dictionary.
var defaultWords = []string{
	"password", "passwort", "qwerty", "admin", "administrator",
	"welcome", "letmein", "monkey", "dragon", "login", "master",
	"shadow", "sunshine", "princess", "football", "baseball",
	"soccer", "secret", "iloveyou", "trustno1", "superman",
	"batman", "freedom", "whatever", "starwars", "hello",
	"charlie", "donald", "summer", "winter", "ninja", "mustang",
	"access", "flower", "hottie", "loveme", "zaq1", "passw0rd",
	"michael", "jordan", "harley", "ranger", "jennifer", "hunter",
	"buster", "thomas", "robert", "matrix", "sentinel",
}

// DefaultParams returns the built-in tuning. The specific numbers are
// illustrative and overridable via config; the monotonicity properties are
// the binding contract.
func DefaultParams() Params {
	return Params{
		Severities: map[FindingKind]float64{
			FindingDictionaryWord:    20,
			FindingSequentialRun:     10,
			FindingRepeatedRun:       10,
			FindingKeyboardAdjacency: 10,
			FindingAllNumeric:        15,
			FindingAllAlpha:          10,
		},
		FullScoreBits:      80,
		PenaltyCap:         40,
		UncrackableSeconds: 1e16, // ~300 million years
		Tiers: []AttackTier{
			{Name: TierOnlineThrottled, GuessesPerSecond: 10},
			{Name: TierOfflineSlowHash, GuessesPerSecond: 1e4},
			{Name: TierOfflineFastHash, GuessesPerSecond: 1e10},
		},
		Words: defaultWords,
	}
}
