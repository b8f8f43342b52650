package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// Seed returns a seed derived from the suite's random seed, so reruns
// with --seed reproduce the same synthetic data.
func Seed() int64 {
	return Rand.Int63()
}
