package services

import (
	"os"
	"testing"

	"github.com/helpkhazaana-eng/production-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}
