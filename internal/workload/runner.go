package workload

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/variant"
	log "github.com/sirupsen/logrus"
	"time"
)

// ctxCheckInterval - Number of operations between checks for cancellation
const ctxCheckInterval = 4096

type verifier interface {
	Verify() error
}

// Result - Outcome of running a workload against one variant
//   - Variant is the variant name
//   - Ops is the number of operations run
//   - Elapsed is the time spent in the timed pass
//   - Len is the number of entries left after the checked pass
//   - Height is the tree height after the checked pass, zero for hash tables
//   - Stat is the hash table statistics after the checked pass, nil for trees
//   - Rejected is the number of inserts rejected because the table was full
type Result struct {
	Variant  string
	Ops      int
	Elapsed  time.Duration
	Len      int
	Height   int
	Stat     *searchtable.TableStat
	Rejected int
}

// OpsPerSecond - Returns the throughput of the timed pass
func (R Result) OpsPerSecond() float64 {
	if R.Elapsed <= 0 {
		return 0
	}
	return float64(R.Ops) / R.Elapsed.Seconds()
}

// RunAll - Generates the operations of the profile and runs them against every variant in it, one at a time
func RunAll(ctx context.Context, profile Profile) (results []Result, err error) {
	if err = profile.Validate(); err != nil {
		return
	}

	kinds, err := profile.Kinds()
	if err != nil {
		return
	}

	ops := Generate(profile)
	log.Infof("[WORKLOAD] generated %d ops over %d keys with seed %d", len(ops), profile.Keys, profile.Seed)

	for _, kind := range kinds {
		var result Result
		result, err = Run(ctx, kind, profile, ops)
		if err != nil {
			return
		}
		results = append(results, result)
	}

	return
}

// Run - Runs ops against a new table of the given variant twice. The first pass is timed, the second pass
// runs on the cleared table and compares every answer with a map, verifying the table's invariants as it goes.
func Run(ctx context.Context, kind int, profile Profile, ops []Op) (result Result, err error) {
	result.Variant = variant.Name(kind)
	result.Ops = len(ops)

	table, err := searchtable.New[int, int](kind, searchtable.Conf[int]{
		Capacity:        profile.Capacity,
		DuplicatePolicy: variant.Overwrite,
	})
	if err != nil {
		err = errors.Wrapf(err, "creating %s", result.Variant)
		return
	}

	log.Debugf("[WORKLOAD] %s timed pass started", result.Variant)
	start := time.Now()
	for i, op := range ops {
		if i%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}

		switch op.Kind {
		case OpInsert:
			if insertErr := table.Insert(entry.New(op.Key, i)); insertErr != nil {
				if !errors.Is(insertErr, variant.TableFull{}) {
					err = errors.Wrapf(insertErr, "%s insert of key %d", result.Variant, op.Key)
					return
				}
				result.Rejected++
			}
		case OpRemove:
			table.Remove(op.Key)
		default:
			table.Find(op.Key)
		}
	}
	result.Elapsed = time.Since(start)
	log.Debugf("[WORKLOAD] %s timed pass took %s", result.Variant, result.Elapsed)

	table.Clear()
	if table.Len() != 0 {
		err = errors.AssertionFailedf("%s holds %d entries after clear", result.Variant, table.Len())
		return
	}

	if err = check(ctx, table, profile.VerifyEvery, ops); err != nil {
		err = errors.Wrapf(err, "checking %s", result.Variant)
		return
	}
	log.Debugf("[WORKLOAD] %s checked pass agrees with map", result.Variant)

	result.Len = table.Len()
	if ordered, ok := table.(searchtable.OrderedTable[int, int]); ok {
		result.Height = ordered.Height()
	}
	if hashed, ok := table.(searchtable.HashTable[int, int]); ok {
		stat := hashed.Stat(false)
		result.Stat = &stat
	}

	return
}

// check - Runs ops against table and a map side by side and returns an error at the first disagreement
func check(ctx context.Context, table searchtable.Table[int, int], verifyEvery int, ops []Op) (err error) {
	oracle := make(map[int]int)
	v, canVerify := table.(verifier)

	for i, op := range ops {
		if i%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}

		switch op.Kind {
		case OpInsert:
			insertErr := table.Insert(entry.New(op.Key, i))
			if errors.Is(insertErr, variant.TableFull{}) {
				if _, ok := oracle[op.Key]; ok || !isFull(table, len(oracle)) {
					return errors.AssertionFailedf("op #%d: insert of key %d rejected by a table that is not full", i, op.Key)
				}
				continue
			}
			if insertErr != nil {
				return errors.Wrapf(insertErr, "op #%d", i)
			}
			oracle[op.Key] = i

		case OpRemove:
			_, ok := oracle[op.Key]
			if removed := table.Remove(op.Key); removed != ok {
				return errors.AssertionFailedf("op #%d: remove of key %d returned %t, expected %t", i, op.Key, removed, ok)
			}
			delete(oracle, op.Key)

		default:
			value, ok := oracle[op.Key]
			e := table.Find(op.Key)
			switch {
			case ok && e == nil:
				return errors.AssertionFailedf("op #%d: key %d not found", i, op.Key)
			case !ok && e != nil:
				return errors.AssertionFailedf("op #%d: removed or never inserted key %d found", i, op.Key)
			case ok && e.Value != value:
				return errors.AssertionFailedf("op #%d: key %d has value %d, expected %d", i, op.Key, e.Value, value)
			}
		}

		if canVerify && verifyEvery > 0 && (i+1)%verifyEvery == 0 {
			if err = v.Verify(); err != nil {
				return errors.Wrapf(err, "op #%d", i)
			}
		}
	}

	if canVerify {
		if err = v.Verify(); err != nil {
			return
		}
	}

	if table.Len() != len(oracle) {
		return errors.AssertionFailedf("table holds %d entries, expected %d", table.Len(), len(oracle))
	}

	return
}

// isFull - Returns true if a hash table has as many entries as it has slots
func isFull(table searchtable.Table[int, int], n int) bool {
	hashed, ok := table.(searchtable.HashTable[int, int])
	if !ok {
		return false
	}
	return hashed.Stat(false).Capacity == n
}
