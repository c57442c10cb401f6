package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitwall/pitgames/internal/api"
	"github.com/pitwall/pitgames/internal/factory"
	"github.com/pitwall/pitgames/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	router http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.router = api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		PuzzleService:   s.app.PuzzleService,
		GuessWhoService: s.app.GuessWhoService,
		EntityStore:     s.app.EntityStore,
	})
}

// do performs a request against the router and decodes the JSON body into out
func (s *APISuite) do(method, path string, body any, out any) int {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func (s *APISuite) TestHealth() {
	var body map[string]string
	code := s.do(http.MethodGet, "/api/v1/health", nil, &body)
	s.Equal(http.StatusOK, code)
	s.Equal("ok", body["status"])
}

func (s *APISuite) TestPuzzleToday() {
	s.app.LoadTestGrid()

	var body struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Date      string `json:"date"`
	}
	code := s.do(http.MethodGet, "/api/v1/puzzle/today", nil, &body)
	s.Equal(http.StatusOK, code)
	s.Equal("2024-06-01", body.Date)
	s.NotEmpty(body.LastName)

	// Same answer on a second request
	var again struct {
		LastName string `json:"lastname"`
	}
	code = s.do(http.MethodGet, "/api/v1/puzzle/today", nil, &again)
	s.Equal(http.StatusOK, code)
	s.Equal(body.LastName, again.LastName)
}

func (s *APISuite) TestPuzzleTodayNoEligibleDrivers() {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code := s.do(http.MethodGet, "/api/v1/puzzle/today", nil, &body)
	s.Equal(http.StatusNotFound, code)
	s.False(body.Success)
	s.Equal("no puzzle available", body.Error)
}

func (s *APISuite) TestPuzzleGuess() {
	s.app.LoadTestGrid()

	tests := []struct {
		name  string
		guess string
		want  bool
	}{
		{"known last name", "Hamilton", true},
		{"case insensitive", "SENNA", true},
		{"full name rejected", "Sébastien Loeb", false},
		{"accent insensitive", "Loéb", true},
		{"unknown name", "Fangio", false},
		{"too short", "z", false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var body struct {
				Success bool `json:"success"`
			}
			code := s.do(http.MethodPost, "/api/v1/puzzle/guess",
				map[string]string{"guess": tt.guess}, &body)
			s.Equal(http.StatusOK, code)
			s.Equal(tt.want, body.Success)
		})
	}
}

func (s *APISuite) TestPuzzleGuessMalformedBodyIsStillOK() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/puzzle/guess",
		bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":false}`, rec.Body.String())
}

func (s *APISuite) TestPuzzleScore() {
	var body struct {
		Success bool `json:"success"`
		Letters []struct {
			Letter string `json:"letter"`
			Status string `json:"status"`
		} `json:"letters"`
	}
	code := s.do(http.MethodPost, "/api/v1/puzzle/score",
		map[string]string{"guess": "sanne", "solution": "senna"}, &body)

	s.Equal(http.StatusOK, code)
	s.True(body.Success)
	s.Require().Len(body.Letters, 5)
	s.Equal("s", body.Letters[0].Letter)
	s.Equal("exact", body.Letters[0].Status)
	s.Equal("present", body.Letters[1].Status)
}

func (s *APISuite) TestPuzzleScoreLengthMismatch() {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code := s.do(http.MethodPost, "/api/v1/puzzle/score",
		map[string]string{"guess": "senna", "solution": "hamilton"}, &body)

	s.Equal(http.StatusBadRequest, code)
	s.False(body.Success)
	s.NotEmpty(body.Error)
}

func (s *APISuite) TestGuessWhoFlow() {
	s.app.LoadTestGrid()
	s.app.MockRandom.QueueString("abcd1234")

	var created struct {
		Success   bool   `json:"success"`
		SessionID string `json:"session_id"`
	}
	code := s.do(http.MethodPost, "/api/v1/guesswho/games",
		map[string]any{"championships": [][]string{{"test_championship", "2024"}}},
		&created)
	s.Equal(http.StatusOK, code)
	s.True(created.Success)
	s.Equal("abcd1234", created.SessionID)

	type joinResult struct {
		Success bool `json:"success"`
		Pilots  map[string]struct {
			ID         string `json:"id"`
			PictureURL string `json:"picture_url"`
		} `json:"pilots"`
		SecretPilot struct {
			ID string `json:"id"`
		} `json:"secret_pilot"`
	}

	var join1 joinResult
	code = s.do(http.MethodGet, "/api/v1/guesswho/join?session=abcd1234&player=1", nil, &join1)
	s.Equal(http.StatusOK, code)
	s.True(join1.Success)
	s.Len(join1.Pilots, 4)
	s.Contains(join1.Pilots, join1.SecretPilot.ID)

	var join2 joinResult
	code = s.do(http.MethodGet, "/api/v1/guesswho/join?session=abcd1234&player=2", nil, &join2)
	s.Equal(http.StatusOK, code)
	s.True(join2.Success)
	s.NotEqual(join1.SecretPilot.ID, join2.SecretPilot.ID)

	// Both players joined, so the session is gone
	var gone struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code = s.do(http.MethodGet, "/api/v1/guesswho/join?session=abcd1234&player=1", nil, &gone)
	s.Equal(http.StatusNotFound, code)
	s.False(gone.Success)
	s.Equal("session not found", gone.Error)
}

func (s *APISuite) TestGuessWhoCreateUnknownChampionship() {
	var body struct {
		Success bool `json:"success"`
	}
	code := s.do(http.MethodPost, "/api/v1/guesswho/games",
		map[string]any{"championships": [][]string{{"imaginary", "2024"}}}, &body)
	s.Equal(http.StatusNotFound, code)
	s.False(body.Success)
}

func (s *APISuite) TestGuessWhoCreateNoSelections() {
	var body struct {
		Success bool `json:"success"`
	}
	code := s.do(http.MethodPost, "/api/v1/guesswho/games",
		map[string]any{"championships": [][]string{}}, &body)
	s.Equal(http.StatusBadRequest, code)
	s.False(body.Success)
}

func (s *APISuite) TestGuessWhoCreateMalformedSelection() {
	var body struct {
		Success bool `json:"success"`
	}
	code := s.do(http.MethodPost, "/api/v1/guesswho/games",
		map[string]any{"championships": [][]string{{"only_name"}}}, &body)
	s.Equal(http.StatusBadRequest, code)
	s.False(body.Success)
}

func (s *APISuite) TestGuessWhoJoinInvalidPlayer() {
	var body struct {
		Success bool `json:"success"`
	}
	code := s.do(http.MethodGet, "/api/v1/guesswho/join?session=abcd1234&player=riccardo", nil, &body)
	s.Equal(http.StatusBadRequest, code)
	s.False(body.Success)
}

func (s *APISuite) TestGuessWhoJoinMissingSession() {
	var body struct {
		Success bool `json:"success"`
	}
	code := s.do(http.MethodGet, "/api/v1/guesswho/join?player=1", nil, &body)
	s.Equal(http.StatusBadRequest, code)
	s.False(body.Success)
}

func (s *APISuite) TestGuessWhoJoinUnknownSession() {
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	code := s.do(http.MethodGet, "/api/v1/guesswho/join?session=deadbeef&player=1", nil, &body)
	s.Equal(http.StatusNotFound, code)
	s.Equal("session not found", body.Error)
}

func (s *APISuite) TestChampionships() {
	s.app.LoadTestGrid()

	var body struct {
		Success       bool                `json:"success"`
		Championships map[string][]string `json:"championships"`
	}
	code := s.do(http.MethodGet, "/api/v1/championships", nil, &body)
	s.Equal(http.StatusOK, code)
	s.True(body.Success)
	s.Equal(map[string][]string{"test_championship": {"2024"}}, body.Championships)
}
