package world

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// SimulationVersion identifies the rules implemented by World. It must change
// every time a change in World makes an old playthrough play out differently.
const SimulationVersion = 1

// InputVersion is the version of the byte representation of the Playthrough
// structure. If serializing a Playthrough produces different bytes than
// before, InputVersion must change as well.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a game. Given
// this input and the same SimulationVersion, the game plays out exactly the
// same way again.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(releaseVersion int64, seed int64, l Level) Playthrough {
	return Playthrough{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		ReleaseVersion:    releaseVersion,
		Level:             l,
		Id:                uuid.New(),
		Seed:              seed,
	}
}

func (p *Playthrough) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	fields := []any{
		p.InputVersion,
		p.SimulationVersion,
		p.ReleaseVersion,
		p.Level.Config,
	}
	for _, f := range fields {
		if err := Serialize(buf, f); err != nil {
			return nil, err
		}
	}
	if err := SerializeSlice(buf, p.Level.Cells); err != nil {
		return nil, err
	}
	if err := Serialize(buf, p.Id); err != nil {
		return nil, err
	}
	if err := Serialize(buf, p.Seed); err != nil {
		return nil, err
	}
	if err := Serialize(buf, int64(len(p.History))); err != nil {
		return nil, err
	}
	for i := range p.History {
		if err := SerializeSlice(buf, p.History[i].Events); err != nil {
			return nil, err
		}
	}
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Cells = slices.Clone(p.Cells)
	clone.History = make([]PlayerInput, len(p.History))
	for i := range p.History {
		clone.History[i].Events = slices.Clone(p.History[i].Events)
	}
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	unzipped, err := Unzip(data)
	if err != nil {
		return p, err
	}
	buf := bytes.NewBuffer(unzipped)
	if err = Deserialize(buf, &p.InputVersion); err != nil {
		return p, err
	}
	if p.InputVersion != InputVersion {
		return p, fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d", InputVersion, p.InputVersion)
	}
	fields := []any{
		&p.SimulationVersion,
		&p.ReleaseVersion,
		&p.Level.Config,
	}
	for _, f := range fields {
		if err = Deserialize(buf, f); err != nil {
			return p, err
		}
	}
	if err = DeserializeSlice(buf, &p.Level.Cells); err != nil {
		return p, err
	}
	if err = p.Level.Validate(); err != nil {
		return p, err
	}
	if err = Deserialize(buf, &p.Id); err != nil {
		return p, err
	}
	if err = Deserialize(buf, &p.Seed); err != nil {
		return p, err
	}
	var n int64
	if err = Deserialize(buf, &n); err != nil {
		return p, err
	}
	// Every frame takes at least the 8 bytes of its length.
	if n < 0 || n > int64(buf.Len()/8) {
		return p, fmt.Errorf("invalid history length: %d", n)
	}
	p.History = make([]PlayerInput, n)
	for i := range p.History {
		if err = DeserializeSlice(buf, &p.History[i].Events); err != nil {
			return p, err
		}
	}
	return p, nil
}

// NewWorldFromPlaythrough creates the World the playthrough starts from.
func NewWorldFromPlaythrough(p Playthrough) World {
	return NewWorld(p.Seed, p.Level)
}
