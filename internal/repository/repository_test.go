package repository_test

import (
	"context"
	"errors"

	"fitstore/internal/db"
	"fitstore/internal/repository"
	"fitstore/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Repository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.Repository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()

		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate the user and model tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user  repository.User
			err   error
			email string
		)

		BeforeEach(func() {
			email = "alice@example.com"
		})

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "secret1", &email)
		})

		When("the username is free", func() {
			It("should store a bcrypt hash, never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Email).To(Equal(&email))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				inserted, ok := record.(*repository.User)
				Expect(ok).To(BeTrue())
				Expect(inserted.PasswordHash).NotTo(Equal("secret1"))
				Expect(bcrypt.CompareHashAndPassword([]byte(inserted.PasswordHash), []byte("secret1"))).To(Succeed())
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return a user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the insert fails unexpectedly", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserExists))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.Authenticate(ctx, "alice", "secret1")
		})

		When("the credentials match", func() {
			BeforeEach(func() {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
				Expect(hashErr).NotTo(HaveOccurred())

				fakeStorage.GetOneByStub = func(_ context.Context, column string, value interface{}, entity interface{}) error {
					Expect(column).To(Equal("username"))
					Expect(value).To(Equal("alice"))
					u := entity.(*repository.User)
					u.ID = 7
					u.Username = "alice"
					u.PasswordHash = string(hash)
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return invalid credentials", func() {
				Expect(err).To(MatchError(repository.ErrInvalidCredentials))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte("different"), bcrypt.MinCost)
				Expect(hashErr).NotTo(HaveOccurred())

				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ interface{}, entity interface{}) error {
					u := entity.(*repository.User)
					u.PasswordHash = string(hash)
					return nil
				}
			})

			It("should return the same invalid credentials error", func() {
				Expect(err).To(MatchError(repository.ErrInvalidCredentials))
			})
		})

		When("the lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrInvalidCredentials))
			})
		})
	})

	Describe("GetUserByID", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByID(ctx, 7)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value interface{}, entity interface{}) error {
					Expect(column).To(Equal("id"))
					Expect(value).To(Equal(uint(7)))
					u := entity.(*repository.User)
					u.ID = 7
					u.Username = "alice"
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
			})
		})

		When("the user is absent", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("SaveModel", func() {
		var (
			metrics repository.ModelMetrics
			err     error
		)

		BeforeEach(func() {
			metrics = repository.ModelMetrics{
				Theta0:  1.5,
				Theta1:  2.3,
				RMSE:    0.12,
				MAE:     0.1,
				R2Score: 0.95,
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveModel(ctx, 7, "mileage", metrics)
		})

		When("the upsert succeeds", func() {
			It("should derive the equation and key the conflict on owner and name", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
				_, record, conflictColumns := fakeStorage.UpsertArgsForCall(0)
				model, ok := record.(*repository.Model)
				Expect(ok).To(BeTrue())
				Expect(model.UserID).To(Equal(uint(7)))
				Expect(model.ModelName).To(Equal("mileage"))
				Expect(model.Equation).To(Equal("y = 2.3000x + 1.5000"))
				Expect(conflictColumns).To(Equal([]string{"user_id", "model_name"}))
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListModels", func() {
		var (
			models []repository.Model
			err    error
		)

		JustBeforeEach(func() {
			models, err = repo.ListModels(ctx, 7)
		})

		When("the user has models", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, column string, value interface{}, order string, entities interface{}) error {
					Expect(column).To(Equal("user_id"))
					Expect(value).To(Equal(uint(7)))
					Expect(order).To(Equal("created_at DESC"))
					list := entities.(*[]repository.Model)
					*list = []repository.Model{
						{ID: 2, ModelName: "newer"},
						{ID: 1, ModelName: "older"},
					}
					return nil
				}
			})

			It("should return them as stored", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(models).To(HaveLen(2))
				Expect(models[0].ModelName).To(Equal("newer"))
			})
		})

		When("the user has no models", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(models).To(BeEmpty())
				Expect(models).NotTo(BeNil())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetModel", func() {
		var (
			model repository.Model
			err   error
		)

		JustBeforeEach(func() {
			model, err = repo.GetModel(ctx, 42, 7)
		})

		When("the model belongs to the user", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereStub = func(_ context.Context, conds map[string]interface{}, entity interface{}) error {
					Expect(conds).To(Equal(map[string]interface{}{"id": uint(42), "user_id": uint(7)}))
					m := entity.(*repository.Model)
					m.ID = 42
					m.ModelName = "mileage"
					return nil
				}
			})

			It("should return the model", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(model.ModelName).To(Equal("mileage"))
			})
		})

		When("no row matches both id and owner", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return model not found", func() {
				Expect(err).To(MatchError(repository.ErrModelNotFound))
			})
		})
	})

	Describe("DeleteModel", func() {
		var (
			deleted bool
			err     error
		)

		JustBeforeEach(func() {
			deleted, err = repo.DeleteModel(ctx, 42, 7)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should report the deletion", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeTrue())

				_, _, conds := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(conds).To(Equal(map[string]interface{}{"id": uint(42), "user_id": uint(7)}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should report nothing deleted", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
