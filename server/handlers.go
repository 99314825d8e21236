package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ogc-tools/geojson-to-wfst/config"
	"github.com/ogc-tools/geojson-to-wfst/geometry"
	"github.com/ogc-tools/geojson-to-wfst/gml"
	"github.com/ogc-tools/geojson-to-wfst/wfs"
)

const maxBodyBytes = 16 << 20

type healthResponse struct {
	Status string `json:"status"`
	Layers int    `json:"layers"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status: "ok",
		Layers: len(s.cfg.Layers),
	})
}

// handleConvertGML converts a GeoJSON geometry (POST body) to a GML
// element. Query parameters: dialect (simple|3.2), srsName, gmlId,
// srsDimension; unset ones fall back to the configured defaults.
func (s *Server) handleConvertGML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "read error", http.StatusBadRequest)
		return
	}

	g, err := geometry.Decode(body)
	if err != nil {
		badRequest(w, "invalid GeoJSON geometry", err)
		return
	}

	q := r.URL.Query()
	dialect := q.Get("dialect")
	if dialect == "" {
		dialect = s.cfg.Defaults.Dialect
	}
	p := gml.Params{
		SrsName: q.Get("srsName"),
		GmlID:   q.Get("gmlId"),
	}
	if p.SrsName == "" {
		p.SrsName = s.cfg.Defaults.SrsName
	}
	if dim := q.Get("srsDimension"); dim != "" {
		n, err := strconv.Atoi(dim)
		if err != nil || (n != 2 && n != 3) {
			http.Error(w, "srsDimension must be 2 or 3", http.StatusBadRequest)
			return
		}
		p.SrsDimension = n
	} else {
		p.SrsDimension = s.cfg.Defaults.SrsDimension
	}

	var out string
	switch dialect {
	case "simple":
		out, err = gml.EncodeSimple(g, p)
	case "3.2":
		out, err = gml.Encode32(g, p)
	default:
		http.Error(w, "dialect must be simple or 3.2", http.StatusBadRequest)
		return
	}
	if err != nil {
		badRequest(w, "encoding failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(out))
}

// transactionRequest carries the feature sets of one transaction. Each
// insert/update entry is a GeoJSON feature; delete entries may be bare
// id strings. An absent set is distinct from a present empty one.
type transactionRequest struct {
	Layer  string            `json:"layer"`
	Insert []json.RawMessage `json:"insert"`
	Update []json.RawMessage `json:"update"`
	Delete []json.RawMessage `json:"delete"`
}

func (s *Server) handleTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "read error", http.StatusBadRequest)
		return
	}

	var req transactionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		badRequest(w, "invalid request body", err)
		return
	}
	if req.Insert == nil && req.Update == nil && req.Delete == nil {
		http.Error(w, "at least one of insert, update, delete is required", http.StatusBadRequest)
		return
	}

	layer, ok := s.cfg.SelectLayer(req.Layer)
	if !ok {
		http.Error(w, "unknown layer "+strconv.Quote(req.Layer), http.StatusBadRequest)
		return
	}

	group := wfs.TransactionGroup{}
	if group.Insert, err = decodeActionFeatures(req.Insert, layer.Name); err != nil {
		badRequest(w, "invalid insert feature", err)
		return
	}
	if group.Update, err = decodeActionFeatures(req.Update, layer.Name); err != nil {
		badRequest(w, "invalid update feature", err)
		return
	}
	if group.Delete, err = decodeActionFeatures(req.Delete, layer.Name); err != nil {
		badRequest(w, "invalid delete feature", err)
		return
	}

	bd := wfs.NewBuilder()
	out, err := bd.Transaction(group, s.transactionParams(layer))
	bd.LogWarnings(layer.Name)
	if err != nil {
		badRequest(w, "transaction build failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(out))
}

func (s *Server) transactionParams(layer config.LayerConfig) wfs.Params {
	srsName := layer.SrsName
	if srsName == "" {
		srsName = s.cfg.Defaults.SrsName
	}
	return wfs.Params{
		Ns:              layer.Ns,
		Layer:           layer.Name,
		TypeName:        layer.TypeName,
		GeometryName:    layer.GeometryName,
		Whitelist:       layer.Whitelist,
		SrsName:         srsName,
		SrsDimension:    s.cfg.Defaults.SrsDimension,
		Version:         s.cfg.Defaults.Version,
		NsAssignments:   s.cfg.Namespaces,
		SchemaLocations: s.cfg.SchemaLocations,
	}
}

// decodeActionFeatures keeps the nil/empty distinction of the input:
// an absent action set stays nil so the builder skips that action.
func decodeActionFeatures(raws []json.RawMessage, layer string) ([]wfs.Feature, error) {
	if raws == nil {
		return nil, nil
	}
	features := make([]wfs.Feature, 0, len(raws))
	for _, raw := range raws {
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			if id == "" {
				return nil, errors.New("empty feature id")
			}
			features = append(features, wfs.Feature{ID: id, Layer: layer})
			continue
		}
		f, err := geometry.DecodeFeature(raw)
		if err != nil {
			return nil, err
		}
		features = append(features, wfs.Feature{
			ID:         f.ID,
			Geometry:   f.Geometry,
			Properties: f.Properties,
			Layer:      layer,
		})
	}
	return features, nil
}

func badRequest(w http.ResponseWriter, msg string, err error) {
	log.Debug().Err(err).Msg(msg)
	http.Error(w, msg+": "+err.Error(), http.StatusBadRequest)
}
