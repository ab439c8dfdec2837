package workload

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/variant"
	"gopkg.in/yaml.v3"
	"os"
)

// Profile - Describes a random workload and how it is checked
//   - Variants is the names of the variants to run, empty means all of them
//   - Ops is the number of operations generated
//   - Keys is the size of the key space, keys are drawn from 0 to Keys - 1
//   - Seed seeds the generator, the same seed gives the same operations
//   - Capacity is the number of slots or buckets of the hash tables
//   - InsertRatio and RemoveRatio are the shares of inserts and removes, the rest are finds
//   - VerifyEvery runs the structural check every that many operations in the checked pass, 0 only at the end
type Profile struct {
	Variants    []string `yaml:"variants"`
	Ops         int      `yaml:"ops"`
	Keys        int      `yaml:"keys"`
	Seed        int64    `yaml:"seed"`
	Capacity    int      `yaml:"capacity"`
	InsertRatio float64  `yaml:"insertRatio"`
	RemoveRatio float64  `yaml:"removeRatio"`
	VerifyEvery int      `yaml:"verifyEvery"`
}

// DefaultProfile - Returns the profile used when nothing else is given
func DefaultProfile() Profile {
	return Profile{
		Ops:         100000,
		Keys:        10000,
		Seed:        1,
		Capacity:    20011,
		InsertRatio: 0.5,
		RemoveRatio: 0.25,
		VerifyEvery: 10000,
	}
}

// LoadProfile - Reads a YAML profile from file. Fields missing in the file keep their value from base.
func LoadProfile(path string, base Profile) (profile Profile, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "reading profile %s", path)
		return
	}

	profile = base
	if err = yaml.Unmarshal(data, &profile); err != nil {
		err = errors.Wrapf(err, "parsing profile %s", path)
		return
	}

	return
}

// Kinds - Returns the variant identifiers named in the profile, all variants if none are named
func (P Profile) Kinds() (kinds []int, err error) {
	if len(P.Variants) == 0 {
		kinds = append(kinds, variant.All...)
		return
	}

	for _, name := range P.Variants {
		kind, ok := variant.FromName(name)
		if !ok {
			err = errors.Newf("unknown variant %q", name)
			return
		}
		kinds = append(kinds, kind)
	}

	return
}

// Validate - Checks that the profile describes a workload that can be run
func (P Profile) Validate() error {
	switch {
	case P.Ops < 0:
		return errors.Newf("ops must not be negative, got %d", P.Ops)
	case P.Keys <= 0:
		return errors.Newf("keys must be a positive value, got %d", P.Keys)
	case P.Capacity < 0:
		return errors.Newf("capacity must not be negative, got %d", P.Capacity)
	case P.InsertRatio < 0 || P.RemoveRatio < 0 || P.InsertRatio+P.RemoveRatio > 1:
		return errors.Newf("insert ratio %v and remove ratio %v must be non negative and add up to at most 1",
			P.InsertRatio, P.RemoveRatio)
	case P.VerifyEvery < 0:
		return errors.Newf("verify every must not be negative, got %d", P.VerifyEvery)
	}

	_, err := P.Kinds()

	return err
}
