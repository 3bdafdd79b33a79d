package helper

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Success Response untuk list berpaginasi
func SuccessList(c *fiber.Ctx, message string, data interface{}, meta Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    fiber.StatusOK,
		"status":  "success",
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance, bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ✅ Khusus error validasi (validator.v10) — 422 dengan alasan per field
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = validationMessage(fieldErr)
	}

	return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal", errorsMap)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field ini wajib diisi."
	case "min":
		return fmt.Sprintf("Nilai minimal %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Nilai maksimal %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Nilai harus salah satu dari: %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Nilai harus >= %s.", fe.Param())
	case "email":
		return "Format email tidak valid."
	default:
		return fe.Tag()
	}
}
