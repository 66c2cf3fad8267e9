package session_test

import (
	"sync"

	"fitstore/internal/session"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var manager *session.Manager

	BeforeEach(func() {
		manager = session.NewManager()
	})

	Describe("Create", func() {
		It("should issue a parseable uuid", func() {
			id := manager.Create(7, "alice")

			_, err := uuid.Parse(id)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should issue distinct identifiers per call", func() {
			first := manager.Create(7, "alice")
			second := manager.Create(7, "alice")

			Expect(first).NotTo(Equal(second))
		})

		It("should record the user behind the session", func() {
			id := manager.Create(7, "alice")

			sess, ok := manager.Get(id)
			Expect(ok).To(BeTrue())
			Expect(sess.UserID).To(Equal(uint(7)))
			Expect(sess.Username).To(Equal("alice"))
			Expect(sess.CreatedAt).NotTo(BeZero())
		})
	})

	Describe("Get", func() {
		It("should report an unknown identifier", func() {
			_, ok := manager.Get("no-such-session")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Delete", func() {
		It("should revoke the session", func() {
			id := manager.Create(7, "alice")

			manager.Delete(id)

			_, ok := manager.Get(id)
			Expect(ok).To(BeFalse())
		})

		It("should be a no-op for an unknown identifier", func() {
			id := manager.Create(7, "alice")

			manager.Delete("no-such-session")

			Expect(manager.IsAuthenticated(id)).To(BeTrue())
		})
	})

	Describe("IsAuthenticated", func() {
		It("should track the session lifecycle", func() {
			id := manager.Create(7, "alice")

			Expect(manager.IsAuthenticated(id)).To(BeTrue())

			manager.Delete(id)

			Expect(manager.IsAuthenticated(id)).To(BeFalse())
		})
	})

	Describe("concurrent access", func() {
		It("should keep every session issued from parallel goroutines", func() {
			const workers = 16

			ids := make([]string, workers)
			var wg sync.WaitGroup
			wg.Add(workers)
			for i := 0; i < workers; i++ {
				go func(i int) {
					defer wg.Done()
					ids[i] = manager.Create(uint(i), "user")
				}(i)
			}
			wg.Wait()

			seen := make(map[string]struct{}, workers)
			for _, id := range ids {
				Expect(manager.IsAuthenticated(id)).To(BeTrue())
				seen[id] = struct{}{}
			}
			Expect(seen).To(HaveLen(workers))
		})
	})
})
