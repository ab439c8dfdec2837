package workload

import (
	"math/rand"
)

// OpFind - Look up a key
const OpFind int = 0

// OpInsert - Insert a key with a value
const OpInsert int = 1

// OpRemove - Remove a key
const OpRemove int = 2

// Op - One operation of a workload
type Op struct {
	Kind int
	Key  int
}

// Generate - Returns the operations of a profile. The same profile always gives the same operations.
func Generate(profile Profile) (ops []Op) {
	rnd := rand.New(rand.NewSource(profile.Seed))
	ops = make([]Op, profile.Ops)

	for i := range ops {
		r := rnd.Float64()
		switch {
		case r < profile.InsertRatio:
			ops[i].Kind = OpInsert
		case r < profile.InsertRatio+profile.RemoveRatio:
			ops[i].Kind = OpRemove
		default:
			ops[i].Kind = OpFind
		}
		ops[i].Key = rnd.Intn(profile.Keys)
	}

	return
}
