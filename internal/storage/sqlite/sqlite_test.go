package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traini8/training-center-api/internal/config"
	"github.com/traini8/training-center-api/internal/storage"
	"github.com/traini8/training-center-api/internal/types"
)

func newTestStorage(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Env:         "dev",
		StoragePath: filepath.Join(t.TempDir(), "test.db"),
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Db.Close() })

	return s
}

func sampleCenter(code string) types.TrainingCenter {
	return types.TrainingCenter{
		CenterName: "IoT Training Center",
		CenterCode: code,
		Address: types.Address{
			DetailedAddress: "44 IoT Avenue",
			City:            "Bangalore",
			State:           "Karnataka",
			Pincode:         "560002",
		},
		StudentCapacity: 140,
		CoursesOffered:  []string{"IoT", "Embedded Systems"},
		ContactEmail:    "iot@example.com",
		ContactPhone:    "9876543220",
	}
}

func TestCreateTrainingCenter(t *testing.T) {
	s := newTestStorage(t)

	before := time.Now().Unix()
	created, err := s.CreateTrainingCenter(sampleCenter("IOTC12345678"))
	require.NoError(t, err)

	assert.Greater(t, created.ID, int64(0))
	assert.GreaterOrEqual(t, created.CreatedOn, before)
	assert.Equal(t, "IOTC12345678", created.CenterCode)

	// The record round-trips through the database intact.
	centers, err := s.GetTrainingCenters(storage.ListFilter{})
	require.NoError(t, err)
	require.Len(t, centers, 1)

	got := centers[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "IoT Training Center", got.CenterName)
	assert.Equal(t, "44 IoT Avenue", got.Address.DetailedAddress)
	assert.Equal(t, "560002", got.Address.Pincode)
	assert.Equal(t, 140, got.StudentCapacity)
	assert.Equal(t, []string{"IoT", "Embedded Systems"}, got.CoursesOffered)
	assert.Equal(t, created.CreatedOn, got.CreatedOn)
	assert.Equal(t, "iot@example.com", got.ContactEmail)
	assert.Equal(t, "9876543220", got.ContactPhone)
}

func TestCreateTrainingCenterDuplicateCode(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.CreateTrainingCenter(sampleCenter("IOTC12345678"))
	require.NoError(t, err)

	duplicate := sampleCenter("IOTC12345678")
	duplicate.CenterName = "Another Center"

	_, err = s.CreateTrainingCenter(duplicate)
	assert.ErrorIs(t, err, storage.ErrCenterCodeExists)

	// The failed insert must not have left a second row behind.
	centers, err := s.GetTrainingCenters(storage.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, centers, 1)
}

func TestCreateTrainingCenterNoCourses(t *testing.T) {
	s := newTestStorage(t)

	center := sampleCenter("IOTC12345678")
	center.CoursesOffered = nil

	created, err := s.CreateTrainingCenter(center)
	require.NoError(t, err)
	assert.NotNil(t, created.CoursesOffered)
	assert.Empty(t, created.CoursesOffered)

	centers, err := s.GetTrainingCenters(storage.ListFilter{})
	require.NoError(t, err)
	require.Len(t, centers, 1)
	// "no courses" stays an empty array, not [""] from splitting ""
	assert.NotNil(t, centers[0].CoursesOffered)
	assert.Empty(t, centers[0].CoursesOffered)
}

func TestGetTrainingCentersEmpty(t *testing.T) {
	s := newTestStorage(t)

	centers, err := s.GetTrainingCenters(storage.ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, centers)
	assert.Empty(t, centers)
}

func TestGetTrainingCentersFilters(t *testing.T) {
	s := newTestStorage(t)

	bangalore := sampleCenter("IOTC12345678")

	mysore := sampleCenter("MYSC00000001")
	mysore.Address.City = "Mysore"
	mysore.Address.Pincode = "570001"

	chennai := sampleCenter("CHEN00000002")
	chennai.Address.City = "Chennai"
	chennai.Address.State = "Tamil Nadu"
	chennai.Address.Pincode = "600001"

	for _, c := range []types.TrainingCenter{bangalore, mysore, chennai} {
		_, err := s.CreateTrainingCenter(c)
		require.NoError(t, err)
	}

	t.Run("by city", func(t *testing.T) {
		centers, err := s.GetTrainingCenters(storage.ListFilter{City: "Mysore"})
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "MYSC00000001", centers[0].CenterCode)
	})

	t.Run("by state", func(t *testing.T) {
		centers, err := s.GetTrainingCenters(storage.ListFilter{State: "Karnataka"})
		require.NoError(t, err)
		assert.Len(t, centers, 2)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		centers, err := s.GetTrainingCenters(storage.ListFilter{
			City:  "Mysore",
			State: "Karnataka",
		})
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "Mysore", centers[0].Address.City)

		centers, err = s.GetTrainingCenters(storage.ListFilter{
			City:  "Mysore",
			State: "Tamil Nadu",
		})
		require.NoError(t, err)
		assert.Empty(t, centers)
	})

	t.Run("by pincode", func(t *testing.T) {
		centers, err := s.GetTrainingCenters(storage.ListFilter{Pincode: "600001"})
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "Chennai", centers[0].Address.City)
	})

	t.Run("no match", func(t *testing.T) {
		centers, err := s.GetTrainingCenters(storage.ListFilter{City: "Delhi"})
		require.NoError(t, err)
		assert.NotNil(t, centers)
		assert.Empty(t, centers)
	})
}
