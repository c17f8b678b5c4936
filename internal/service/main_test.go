package service

import (
	"os"
	"testing"

	"mannamsalon/utils/validate"
)

func TestMain(m *testing.M) {
	validate.RegisterValidators()
	os.Exit(m.Run())
}
