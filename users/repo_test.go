package users_test

import (
	"context"
	"fmt"

	"github.com/mohae/deepcopy"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	storeTest "github.com/tidepool-org/glucoguide/store/test"
	"github.com/tidepool-org/glucoguide/users"
	usersTest "github.com/tidepool-org/glucoguide/users/test"
)

var _ = Describe("Repository", func() {
	var redis *storeTest.RedisServer
	var repo users.Repository
	var profiles []users.Profile

	BeforeEach(func() {
		redis = storeTest.StartRedis()
		repo = users.NewRepository(redis.Store, zap.NewNop().Sugar())
		profiles = usersTest.RandomProfiles(3)
	})

	AfterEach(func() {
		redis.Close()
	})

	It("is empty before anything is stored", func() {
		exists, err := repo.Exists(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeFalse())

		list, err := repo.List(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(BeEmpty())
	})

	It("stores the list as a single blob", func() {
		Expect(repo.ReplaceAll(context.Background(), profiles)).To(Succeed())

		blob, err := redis.Server.Get(users.UsersKey)
		Expect(err).ToNot(HaveOccurred())
		Expect(blob).To(ContainSubstring(fmt.Sprintf(`"username":"%s"`, profiles[0].Username)))
		Expect(blob).To(ContainSubstring(`"correctionFactor":`))

		list, err := repo.List(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(Equal(profiles))
	})

	It("reports an empty list as existing", func() {
		Expect(repo.ReplaceAll(context.Background(), nil)).To(Succeed())

		exists, err := repo.Exists(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("gets users by exact username", func() {
		Expect(repo.ReplaceAll(context.Background(), profiles)).To(Succeed())

		profile, err := repo.Get(context.Background(), profiles[1].Username)
		Expect(err).ToNot(HaveOccurred())
		Expect(*profile).To(Equal(profiles[1]))

		_, err = repo.Get(context.Background(), "X"+profiles[1].Username)
		Expect(err).To(MatchError(users.ErrNotFound))
	})

	It("replaces only the matching user on update", func() {
		Expect(repo.ReplaceAll(context.Background(), profiles)).To(Succeed())

		expected := deepcopy.Copy(profiles).([]users.Profile)
		expected[2].MaxGlucose = 250
		expected[2].ControlLevel = "Advanced"
		Expect(repo.Update(context.Background(), profiles[2].Username, expected[2])).To(Succeed())

		list, err := repo.List(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(Equal(expected))
	})

	It("writes back an unchanged list when no user matches", func() {
		Expect(repo.ReplaceAll(context.Background(), profiles)).To(Succeed())
		Expect(repo.Update(context.Background(), "nobody", usersTest.RandomProfile())).To(Succeed())

		list, err := repo.List(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(Equal(profiles))
	})

	It("fails on a corrupt blob", func() {
		Expect(redis.Server.Set(users.UsersKey, "[{")).To(Succeed())

		_, err := repo.List(context.Background())
		Expect(err).To(HaveOccurred())
	})

	Context("With a failing store", func() {
		var ctrl *gomock.Controller
		var st *storeTest.MockStore

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			st = storeTest.NewMockStore(ctrl)
			repo = users.NewRepository(st, zap.NewNop().Sugar())
		})

		It("doesn't write when the list can't be read", func() {
			st.EXPECT().Get(gomock.Any(), users.UsersKey).Return(nil, fmt.Errorf("connection refused"))

			err := repo.Update(context.Background(), "good", usersTest.RandomProfile())
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})

		It("returns write errors", func() {
			st.EXPECT().Set(gomock.Any(), users.UsersKey, gomock.Any()).Return(fmt.Errorf("read only"))

			Expect(repo.ReplaceAll(context.Background(), profiles)).To(MatchError("read only"))
		})
	})
})

var _ = Describe("Usernames", func() {
	It("keeps the order of the profiles", func() {
		Expect(users.Usernames(users.SeedProfiles())).To(Equal([]string{"good", "bad", "average"}))
	})

	It("returns an independent copy of the seed", func() {
		seed := users.SeedProfiles()
		seed[0].Username = "changed"
		Expect(users.SeedProfiles()[0].Username).To(Equal("good"))
	})
})
