package main

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/retoomey/RAPIO-sub003/projection"
	"github.com/retoomey/RAPIO-sub003/render"
)

// resolveTile pulls the shared z/x/y path variables and site/product
// query parameters every /tms/... route takes, and resolves them to a decoded
// RadialSet + projection. Each request builds its own RadialSet and
// RadialSetProjection -- nothing here is shared across goroutines.
func (s *server) resolveTile(w http.ResponseWriter, r *http.Request) (*projection.RadialSetProjection, int, int, int, bool) {
	vars := mux.Vars(r)
	z, _ := strconv.Atoi(vars["z"])
	x, _ := strconv.Atoi(vars["x"])
	y, _ := strconv.Atoi(vars["y"])

	site := r.URL.Query().Get("site")
	product := r.URL.Query().Get("product")
	if site == "" || product == "" {
		http.Error(w, "site and product query parameters are required", http.StatusBadRequest)
		return nil, 0, 0, 0, false
	}

	key, err := s.latestObjectKey(r.Context(), site, product)
	if err != nil {
		logrus.WithError(err).Warn("latestObjectKey failed")
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, 0, 0, 0, false
	}

	rs, err := s.fetchAndDecode(r.Context(), key)
	if err != nil {
		logrus.WithError(err).Warn("fetchAndDecode failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return nil, 0, 0, 0, false
	}

	return projection.NewRadialSetProjection(rs, projection.DefaultAccuracy), z, x, y, true
}

func (s *server) handleTilePNG(w http.ResponseWriter, r *http.Request) {
	proj, z, x, y, ok := s.resolveTile(w, r)
	if !ok {
		return
	}
	scheme := r.URL.Query().Get("scheme")
	colorFn, ok := render.ReflectivitySchemes[scheme]
	if !ok {
		colorFn = render.ReflectivitySchemes["noaa"]
	}

	img := render.TMSTile(proj, z, x, y, s.tileSizePx, colorFn)
	w.Header().Set("Content-Type", "image/png")
	if err := render.SavePNG(w, img); err != nil {
		logrus.WithError(err).Warn("SavePNG failed")
	}
}

// handleTileMRMS serves the tile as a raw 256x256 (or configured
// size) little-endian float32 grid, one value per pixel -- no color
// mapping, for clients that want the physical value rather than a
// rendered image.
func (s *server) handleTileMRMS(w http.ResponseWriter, r *http.Request) {
	proj, z, x, y, ok := s.resolveTile(w, r)
	if !ok {
		return
	}

	nwLat := projection.TileLatDegs(y, z)
	nwLon := projection.TileLonDegs(x, z)
	seLat := projection.TileLatDegs(y+1, z)
	seLon := projection.TileLonDegs(x+1, z)
	size := s.tileSizePx

	w.Header().Set("Content-Type", "application/octet-stream")
	buf := make([]byte, 4)
	for row := 0; row < size; row++ {
		lat := nwLat + (seLat-nwLat)*float64(row)/float64(size)
		for col := 0; col < size; col++ {
			lon := nwLon + (seLon-nwLon)*float64(col)/float64(size)
			v := proj.ValueAt(lat, lon)
			binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
			w.Write(buf)
		}
	}
}

func (s *server) handleLatestMeta(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	site := vars["site"]
	product := vars["product"]

	key, err := s.latestObjectKey(r.Context(), site, product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	rs, err := s.fetchAndDecode(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	companion, err := companionLevel2Volume(site)
	if err != nil {
		logrus.WithError(err).Debug("companionLevel2Volume unavailable")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"site":              site,
		"product":           product,
		"objectKey":         key,
		"generationTime":    rs.DataTime.String(),
		"elevationDegs":     rs.ElevationDegs,
		"companionLevel2":   companion,
	})
}
