package provider

import (
	"hash/fnv"
	"math"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strconv"
	"time"

	"f1charts/pkg/logging"
	"f1charts/pkg/model"
	"f1charts/pkg/teams"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const (
	mockRounds          = 24
	mockTelemetrySample = 600
)

var mockEvents = [mockRounds]struct{ name, country, location string }{
	{"Bahrain Grand Prix", "Bahrain", "Sakhir"},
	{"Saudi Arabian Grand Prix", "Saudi Arabia", "Jeddah"},
	{"Australian Grand Prix", "Australia", "Melbourne"},
	{"Japanese Grand Prix", "Japan", "Suzuka"},
	{"Chinese Grand Prix", "China", "Shanghai"},
	{"Miami Grand Prix", "United States", "Miami"},
	{"Emilia Romagna Grand Prix", "Italy", "Imola"},
	{"Monaco Grand Prix", "Monaco", "Monaco"},
	{"Canadian Grand Prix", "Canada", "Montréal"},
	{"Spanish Grand Prix", "Spain", "Barcelona"},
	{"Austrian Grand Prix", "Austria", "Spielberg"},
	{"British Grand Prix", "United Kingdom", "Silverstone"},
	{"Hungarian Grand Prix", "Hungary", "Budapest"},
	{"Belgian Grand Prix", "Belgium", "Spa-Francorchamps"},
	{"Dutch Grand Prix", "Netherlands", "Zandvoort"},
	{"Italian Grand Prix", "Italy", "Monza"},
	{"Azerbaijan Grand Prix", "Azerbaijan", "Baku"},
	{"Singapore Grand Prix", "Singapore", "Marina Bay"},
	{"United States Grand Prix", "United States", "Austin"},
	{"Mexico City Grand Prix", "Mexico", "Mexico City"},
	{"São Paulo Grand Prix", "Brazil", "São Paulo"},
	{"Las Vegas Grand Prix", "United States", "Las Vegas"},
	{"Qatar Grand Prix", "Qatar", "Lusail"},
	{"Abu Dhabi Grand Prix", "United Arab Emirates", "Yas Island"},
}

var mockRoster = []struct {
	number, abbreviation, name, team string
}{
	{"1", "VER", "Max Verstappen", "Red Bull"},
	{"11", "PER", "Sergio Perez", "Red Bull"},
	{"16", "LEC", "Charles Leclerc", "Ferrari"},
	{"55", "SAI", "Carlos Sainz", "Ferrari"},
	{"4", "NOR", "Lando Norris", "McLaren"},
	{"81", "PIA", "Oscar Piastri", "McLaren"},
	{"44", "HAM", "Lewis Hamilton", "Mercedes"},
	{"63", "RUS", "George Russell", "Mercedes"},
	{"14", "ALO", "Fernando Alonso", "Aston Martin"},
	{"18", "STR", "Lance Stroll", "Aston Martin"},
	{"10", "GAS", "Pierre Gasly", "Alpine"},
	{"31", "OCO", "Esteban Ocon", "Alpine"},
	{"22", "TSU", "Yuki Tsunoda", "RB"},
	{"3", "RIC", "Daniel Ricciardo", "RB"},
	{"27", "HUL", "Nico Hulkenberg", "Haas"},
	{"20", "MAG", "Kevin Magnussen", "Haas"},
	{"23", "ALB", "Alexander Albon", "Williams"},
	{"2", "SAR", "Logan Sargeant", "Williams"},
	{"77", "BOT", "Valtteri Bottas", "Sauber"},
	{"24", "ZHO", "Zhou Guanyu", "Sauber"},
}

// predecessors of teams that changed name between seasons
var mockTeamPredecessor = map[string]string{
	"RB":     "AlphaTauri",
	"Sauber": "Alfa Romeo",
}

// NewMockHandler serves deterministic synthetic sessions: the same
// year, round and session always produce the same data.
func NewMockHandler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{year:[0-9]+}/{round:[0-9]+}/{session}", handleMockSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{year:[0-9]+}/{round:[0-9]+}/{session}/laps/{driver}/{lap:[0-9]+}/telemetry", handleMockTelemetry).Methods(http.MethodGet)
	return r
}

// StartMockServer listens on addr and serves the mock provider in the
// background.
func StartMockServer(addr string) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %s", addr)
	}
	srv := &http.Server{
		Handler:      NewMockHandler(),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
	}
	go func() {
		logging.Info().Str("address", ln.Addr().String()).Msg("mock provider listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("mock provider stopped")
		}
	}()
	return srv, nil
}

func mockParams(r *http.Request) (int, int, string, bool) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		return 0, 0, "", false
	}
	round, err := strconv.Atoi(vars["round"])
	if err != nil || round < 1 || round > mockRounds {
		return 0, 0, "", false
	}
	return year, round, vars["session"], true
}

func handleMockSession(w http.ResponseWriter, r *http.Request) {
	year, round, session, ok := mockParams(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeMockJSON(w, MockSession(year, round, session))
}

func handleMockTelemetry(w http.ResponseWriter, r *http.Request) {
	year, round, session, ok := mockParams(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	driver := mux.Vars(r)["driver"]
	lap, _ := strconv.Atoi(mux.Vars(r)["lap"])

	s := MockSession(year, round, session)
	found := false
	for _, l := range s.DriverLaps(driver) {
		if l.LapNumber == lap {
			found = true
			break
		}
	}
	if !found {
		http.NotFound(w, r)
		return
	}
	writeMockJSON(w, MockTelemetry(year, round, session, driver, lap))
}

func writeMockJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encoding mock response")
	}
}

func mockSeed(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return int64(h.Sum64() & math.MaxInt64)
}

func mockTeamName(year int, short string) string {
	if t, ok := teams.Lookup(year, short); ok {
		return t.Team
	}
	if prev, ok := mockTeamPredecessor[short]; ok {
		if t, ok := teams.Lookup(year, prev); ok {
			return t.Team
		}
	}
	if t, ok := teams.Lookup(2024, short); ok {
		return t.Team
	}
	return short
}

type mockRunner struct {
	driver  model.Driver
	pace    float64
	retires int
	total   float64
	laps    []model.Lap
}

// MockSession generates a session. Drivers come back in finishing order.
func MockSession(year, round int, sessionType string) *model.Session {
	rng := rand.New(rand.NewSource(mockSeed("session", strconv.Itoa(year), strconv.Itoa(round), sessionType)))
	ev := mockEvents[(round-1)%mockRounds]

	totalLaps := 50 + rng.Intn(21)
	if sessionType != model.SessionRace {
		totalLaps = 12 + rng.Intn(8)
	}
	wet := round%7 == 0
	dry := []string{"SOFT", "MEDIUM", "HARD"}
	wetCompounds := []string{"INTERMEDIATE", "WET"}

	runners := make([]*mockRunner, len(mockRoster))
	for i, d := range mockRoster {
		runners[i] = &mockRunner{
			driver: model.Driver{
				Number:       d.number,
				Abbreviation: d.abbreviation,
				FullName:     d.name,
				TeamName:     mockTeamName(year, d.team),
			},
			pace:    88 + rng.Float64()*3,
			retires: totalLaps + 1,
		}
		if sessionType == model.SessionRace && rng.Intn(10) == 0 {
			runners[i].retires = 5 + rng.Intn(totalLaps-5)
		}
	}

	for _, rn := range runners {
		stops := 1 + rng.Intn(3)
		if sessionType != model.SessionRace {
			stops = 2
		}
		pits := rng.Perm(totalLaps - 10)[:stops]
		sort.Ints(pits)
		stint := 1
		compounds := dry
		if wet {
			compounds = wetCompounds
		}
		compound := compounds[rng.Intn(len(compounds))]
		next := 0
		for lap := 1; lap <= totalLaps && lap < rn.retires; lap++ {
			if next < len(pits) && lap == pits[next]+5 {
				stint++
				next++
				compound = compounds[rng.Intn(len(compounds))]
			}
			t := rn.pace + rng.Float64()*1.5
			if lap == 1 {
				t += 6
			}
			rn.total += t
			rn.laps = append(rn.laps, model.Lap{
				Driver:    rn.driver.Abbreviation,
				LapNumber: lap,
				LapTime:   math.Round(t*1000) / 1000,
				Stint:     stint,
				Compound:  compound,
				Deleted:   sessionType != model.SessionRace && rng.Intn(12) == 0,
			})
		}
	}

	// running order after every lap
	for lap := 1; lap <= totalLaps; lap++ {
		type runTime struct {
			r *mockRunner
			t float64
		}
		order := []runTime{}
		for _, rn := range runners {
			if lap > len(rn.laps) {
				continue
			}
			t := 0.0
			for _, l := range rn.laps[:lap] {
				t += l.LapTime
			}
			order = append(order, runTime{r: rn, t: t})
		}
		sort.SliceStable(order, func(i, j int) bool { return order[i].t < order[j].t })
		for pos, o := range order {
			o.r.laps[lap-1].Position = pos + 1
		}
	}

	sort.SliceStable(runners, func(i, j int) bool {
		if len(runners[i].laps) != len(runners[j].laps) {
			return len(runners[i].laps) > len(runners[j].laps)
		}
		return runners[i].total < runners[j].total
	})

	s := &model.Session{
		Event: model.Event{Year: year, Round: round, Name: ev.name, Country: ev.country, Location: ev.location},
		Type:  sessionType,
	}
	for i, rn := range runners {
		rn.driver.Position = i + 1
		s.Drivers = append(s.Drivers, rn.driver)
		s.Laps = append(s.Laps, rn.laps...)
	}
	return s
}

// MockTelemetry traces a closed circuit whose shape depends on the round.
// Speed drops where the track bends.
func MockTelemetry(year, round int, sessionType, driver string, lap int) []model.LapTelemetrySample {
	shape := rand.New(rand.NewSource(mockSeed("track", strconv.Itoa(round))))
	a3, p3 := 0.15+shape.Float64()*0.15, shape.Float64()*2*math.Pi
	a5, p5 := 0.05+shape.Float64()*0.08, shape.Float64()*2*math.Pi
	radius := 2500 + shape.Float64()*1500

	noise := rand.New(rand.NewSource(mockSeed("lap", strconv.Itoa(year), strconv.Itoa(round), sessionType, driver, strconv.Itoa(lap))))
	top := 300 + noise.Float64()*20

	samples := make([]model.LapTelemetrySample, mockTelemetrySample)
	for i := range samples {
		theta := 2 * math.Pi * float64(i) / float64(mockTelemetrySample)
		r := radius * (1 + a3*math.Sin(3*theta+p3) + a5*math.Cos(5*theta+p5))
		bend := math.Abs(3*a3*math.Cos(3*theta+p3)) + math.Abs(5*a5*math.Sin(5*theta+p5))
		speed := top - 190*math.Min(1, bend) + noise.Float64()*3
		samples[i] = model.LapTelemetrySample{
			X:     math.Round(r*math.Cos(theta)*10) / 10,
			Y:     math.Round(0.6*r*math.Sin(theta)*10) / 10,
			Speed: math.Round(speed*10) / 10,
		}
	}
	return samples
}
