package errors_test

import (
	"os"
	"os/exec"

	"github.com/rwx-research/wait-until/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("ConfigurationError", func() {
		It("behaves like an error", func() {
			err := errors.NewConfigurationError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			configErr, ok := errors.AsConfigurationError(err)

			Expect(ok).To(Equal(true))
			Expect(configErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})

	Describe("ExecutionError", func() {
		It("behaves like an error", func() {
			err := errors.NewExecutionError(2, "some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			executionErr, ok := errors.AsExecutionError(err)

			Expect(ok).To(Equal(true))
			Expect(executionErr).To(Equal(err))
			Expect(executionErr.Code).To(Equal(2))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})

		It("survives being wrapped", func() {
			err := errors.Wrap(errors.NewExecutionError(3, "child failed"), "run")

			executionErr, ok := errors.AsExecutionError(err)

			Expect(ok).To(Equal(true))
			Expect(executionErr.Code).To(Equal(3))
		})
	})

	Describe("InputError", func() {
		It("behaves like an error", func() {
			err := errors.NewInputError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			inputErr, ok := errors.AsInputError(err)

			Expect(ok).To(Equal(true))
			Expect(inputErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})

	Describe("InternalError", func() {
		It("behaves like an error", func() {
			err := errors.NewInternalError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(true))
			Expect(internalErr).To(Equal(err))

			systemErr, ok := errors.AsSystemError(err)

			Expect(ok).To(Equal(false))
			Expect(systemErr.E).To(BeNil())
		})
	})

	Describe("SpawnError", func() {
		It("behaves like an error", func() {
			err := errors.NewSpawnError("nope", "unable to start %q: %w", "nope", exec.ErrNotFound)
			Expect(err.Error()).To(ContainSubstring(`unable to start "nope"`))
			Expect(err.Command).To(Equal("nope"))

			spawnErr, ok := errors.AsSpawnError(errors.WithStack(err))

			Expect(ok).To(Equal(true))
			Expect(spawnErr.Command).To(Equal("nope"))

			executionErr, ok := errors.AsExecutionError(err)

			Expect(ok).To(Equal(false))
			Expect(executionErr.E).To(BeNil())
		})

		It("keeps the underlying OS error inspectable", func() {
			err := errors.NewSpawnError("nope", "unable to start %q: %w", "nope", os.ErrPermission)
			Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
		})
	})

	Describe("SystemError", func() {
		It("behaves like an error", func() {
			err := errors.NewSystemError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			systemErr, ok := errors.AsSystemError(err)

			Expect(ok).To(Equal(true))
			Expect(systemErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})
})
