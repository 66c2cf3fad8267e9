package core_test

import (
	"context"
	"errors"

	"fitstore/internal/core"
	"fitstore/internal/core/fake"
	"fitstore/internal/repository"
	"fitstore/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("FitStore", func() {
	var (
		fakeRepo     *fake.Repository
		fakeSessions *fake.SessionStore
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		fitstore *core.FitStore

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSessions = new(fake.SessionStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		fitstore = core.NewFitStore(fakeLogger, fakeRepo, fakeSessions)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			msg    core.SignupMessage
			record core.UserRecord
			err    error
			email  string
		)

		BeforeEach(func() {
			email = "alice@example.com"
			msg = core.SignupMessage{
				Username: "alice",
				Password: "secret1",
				Email:    &email,
			}
		})

		JustBeforeEach(func() {
			record, err = fitstore.Signup(ctx, msg)
		})

		When("input is valid and the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
					Email:        &email,
				}, nil)
			})

			It("should create the user and return public fields only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(record.Username).To(Equal("alice"))
				Expect(record.Email).To(Equal(&email))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, password, emailArg := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(password).To(Equal("secret1"))
				Expect(emailArg).To(Equal(&email))
			})
		})

		When("the username is too short", func() {
			BeforeEach(func() {
				msg.Username = "al"
			})

			It("should reject the input without touching storage", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password is too short", func() {
			BeforeEach(func() {
				msg.Password = "short"
			})

			It("should reject the input without touching storage", func() {
				Expect(err).To(MatchError(core.ErrInvalidInput))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return a user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("storage fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrUserExists))
			})
		})
	})

	Describe("Signin", func() {
		var (
			msg       core.SigninMessage
			sessionID string
			record    core.UserRecord
			err       error
		)

		BeforeEach(func() {
			msg = core.SigninMessage{
				Username: "alice",
				Password: "secret1",
			}
		})

		JustBeforeEach(func() {
			sessionID, record, err = fitstore.Signin(ctx, msg)
		})

		When("credentials are correct", func() {
			BeforeEach(func() {
				fakeRepo.AuthenticateReturns(repository.User{
					ID:       7,
					Username: "alice",
				}, nil)
				fakeSessions.CreateReturns("session-1")
			})

			It("should issue a session for the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sessionID).To(Equal("session-1"))
				Expect(record.Username).To(Equal("alice"))

				Expect(fakeRepo.AuthenticateCallCount()).To(Equal(1))
				_, username, password := fakeRepo.AuthenticateArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(password).To(Equal("secret1"))

				Expect(fakeSessions.CreateCallCount()).To(Equal(1))
				userID, usernameArg := fakeSessions.CreateArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(usernameArg).To(Equal("alice"))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeRepo.AuthenticateReturns(repository.User{}, repository.ErrInvalidCredentials)
			})

			It("should return invalid credentials without a session", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(sessionID).To(BeEmpty())
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("storage fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.AuthenticateReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Signout", func() {
		var found bool

		JustBeforeEach(func() {
			found = fitstore.Signout("session-1")
		})

		When("the session exists", func() {
			BeforeEach(func() {
				fakeSessions.IsAuthenticatedReturns(true)
			})

			It("should delete the session", func() {
				Expect(found).To(BeTrue())
				Expect(fakeSessions.DeleteCallCount()).To(Equal(1))
				Expect(fakeSessions.DeleteArgsForCall(0)).To(Equal("session-1"))
			})
		})

		When("the session is absent", func() {
			BeforeEach(func() {
				fakeSessions.IsAuthenticatedReturns(false)
			})

			It("should report not found without deleting", func() {
				Expect(found).To(BeFalse())
				Expect(fakeSessions.DeleteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CurrentUser", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = fitstore.CurrentUser(ctx, "session-1")
		})

		When("the session resolves to a stored user", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7, Username: "alice"}, true)
				fakeRepo.GetUserByIDReturns(repository.User{ID: 7, Username: "alice"}, nil)
			})

			It("should return the public user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(record.Username).To(Equal("alice"))

				_, id := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("the session is unknown", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{}, false)
			})

			It("should return unauthorized without a storage lookup", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("the stored user is gone", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("SaveModel", func() {
		var (
			msg core.SaveModelMessage
			err error
		)

		BeforeEach(func() {
			msg = core.SaveModelMessage{
				Name:    "m1",
				Theta0:  1.5,
				Theta1:  2.3,
				RMSE:    0.1,
				MAE:     0.1,
				R2Score: 0.9,
			}
		})

		JustBeforeEach(func() {
			err = fitstore.SaveModel(ctx, "session-1", msg)
		})

		When("the session is active", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7, Username: "alice"}, true)
				fakeRepo.SaveModelReturns(nil)
			})

			It("should save the model under the session's user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveModelCallCount()).To(Equal(1))
				_, userID, name, metrics := fakeRepo.SaveModelArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(name).To(Equal("m1"))
				Expect(metrics.Theta0).To(Equal(1.5))
				Expect(metrics.Theta1).To(Equal(2.3))
				Expect(metrics.SklearnRMSE).To(BeNil())
			})
		})

		When("the session is absent", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{}, false)
			})

			It("should return unauthorized without touching storage", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.SaveModelCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.SaveModelReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListModels", func() {
		var (
			records []core.ModelRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = fitstore.ListModels(ctx, "session-1")
		})

		When("the session is active", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.ListModelsReturns([]repository.Model{
					{ID: 2, ModelName: "m2", Equation: "y = 1.0000x + 0.0000"},
					{ID: 1, ModelName: "m1", Equation: "y = 2.3000x + 1.5000"},
				}, nil)
			})

			It("should return the user's models in storage order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ModelName).To(Equal("m2"))
				Expect(records[1].Equation).To(Equal("y = 2.3000x + 1.5000"))

				_, userID := fakeRepo.ListModelsArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("the session is absent", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{}, false)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.ListModelsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetModel", func() {
		var (
			record core.ModelRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = fitstore.GetModel(ctx, "session-1", 42)
		})

		When("the model belongs to the session's user", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.GetModelReturns(repository.Model{ID: 42, ModelName: "m1", UserID: 7}, nil)
			})

			It("should return the model", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(42)))

				_, modelID, userID := fakeRepo.GetModelArgsForCall(0)
				Expect(modelID).To(Equal(uint(42)))
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("the model is absent or owned by someone else", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.GetModelReturns(repository.Model{}, repository.ErrModelNotFound)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrModelNotFound))
			})
		})

		When("the session is absent", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{}, false)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.GetModelCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteModel", func() {
		var err error

		JustBeforeEach(func() {
			err = fitstore.DeleteModel(ctx, "session-1", 42)
		})

		When("the model belongs to the session's user", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.DeleteModelReturns(true, nil)
			})

			It("should delete the model", func() {
				Expect(err).NotTo(HaveOccurred())

				_, modelID, userID := fakeRepo.DeleteModelArgsForCall(0)
				Expect(modelID).To(Equal(uint(42)))
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("no matching row exists", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{UserID: 7}, true)
				fakeRepo.DeleteModelReturns(false, nil)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrModelNotFound))
			})
		})

		When("the session is absent", func() {
			BeforeEach(func() {
				fakeSessions.GetReturns(session.Session{}, false)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.DeleteModelCallCount()).To(Equal(0))
			})
		})
	})
})
