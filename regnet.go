// Package regnet assembles signed, confidence-weighted gene-regulatory
// and signaling networks from curated interaction sources and
// normalizes them into a canonical edge-list schema for downstream
// statistical inference.
package regnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/regnetkit/regnet/core/build"
	"github.com/regnetkit/regnet/core/organism"
	"github.com/regnetkit/regnet/helper"
	"github.com/regnetkit/regnet/model"
	"github.com/regnetkit/regnet/omnipath"
)

// Translator converts annotation identifiers across species and
// vocabularies. translate.TableTranslator is the provided
// implementation.
type Translator interface {
	Orthology(records []model.AnnotationRecord, column string, target organism.ID) ([]model.AnnotationRecord, error)
	ToSymbol(records []model.AnnotationRecord, from, to string) ([]model.AnnotationRecord, error)
}

// ResourceNotFoundError is returned when a named annotation resource
// fails registry validation or cannot be fetched from either the live
// service or the static snapshot.
type ResourceNotFoundError struct {
	Resource string
	Err      error
}

func (e *ResourceNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("annotation resource %q not available: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("annotation resource %q not found in the resource registry", e.Resource)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Err
}

// Config configures a Regnet instance.
type Config struct {
	// Omnipath configures the knowledge-base client.
	Omnipath omnipath.Config
	// Translator handles non-human annotation queries. Optional; without
	// one, only human annotation queries succeed.
	Translator Translator
	// Registry is an optional remote taxonomy lookup consulted before
	// the local organism mapping.
	Registry organism.Registry
	// LogLevel defaults to Info; LogOutput defaults to stdout.
	LogLevel  slog.Level
	LogOutput io.Writer
}

// Regnet provides the network builders over one knowledge-base client.
type Regnet struct {
	Client     *omnipath.Client
	Translator Translator
	registry   organism.Registry
	log        *slog.Logger
}

// New creates a Regnet instance. A nil config uses defaults throughout.
func New(config *Config) *Regnet {
	if config == nil {
		config = &Config{}
	}

	out := config.LogOutput
	if out == nil {
		out = os.Stdout
	}
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: config.LogLevel,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(out, opts))

	omnipathConfig := config.Omnipath
	if omnipathConfig.Log == nil {
		omnipathConfig.Log = logger
	}

	return &Regnet{
		Client:     omnipath.NewClient(omnipathConfig),
		Translator: config.Translator,
		registry:   config.Registry,
		log:        logger,
	}
}

// Dorothea assembles the confidence-weighted regulon network for one
// organism: every edge carries a confidence tier and a mor scaled by
// the tier divisor. A transient live-fetch failure falls back once to
// the static snapshot.
func (r *Regnet) Dorothea(ctx context.Context, org string, opts build.DorotheaOptions) ([]model.Edge, error) {
	orgID, err := r.resolveOrganism(ctx, org)
	if err != nil {
		return nil, err
	}

	records, err := r.Client.DorotheaInteractions(ctx, orgID)
	if err != nil {
		records, err = r.recoverInteractions(err, func() ([]model.Interaction, error) {
			return r.Client.StaticDorotheaInteractions(ctx, orgID)
		})
		if err != nil {
			return nil, err
		}
	}

	edges, err := build.Dorothea(records, opts)
	if err != nil {
		return nil, err
	}

	r.log.Info("Built confidence-weighted network",
		slog.String("organism", orgID.CommonName()),
		slog.Int("edges", len(edges)))

	return edges, nil
}

// Collectri assembles the complex-aware transcriptional network for one
// organism. For human, curated TF-miRNA interactions supplement the
// base table; failing to fetch them degrades the input with a warning
// instead of failing the build.
func (r *Regnet) Collectri(ctx context.Context, org string, opts build.CollectriOptions) ([]model.Edge, error) {
	orgID, err := r.resolveOrganism(ctx, org)
	if err != nil {
		return nil, err
	}

	records, err := r.Client.TranscriptionalInteractions(ctx, orgID)
	if err != nil {
		var transient *omnipath.TransientError
		if !errors.As(err, &transient) {
			return nil, helper.NewError("fetch transcriptional interactions", err)
		}
		r.log.Warn("Live fetch failed, falling back to static snapshot", slog.String("error", err.Error()))
		records, err = r.Client.StaticTranscriptionalInteractions(ctx, orgID)
		if err != nil {
			return nil, helper.NewError("fetch static transcriptional snapshot", err)
		}
	}

	if orgID == organism.Human {
		mirna, err := r.Client.TFMiRNAInteractions(ctx)
		if err != nil {
			r.log.Warn("TF-miRNA supplement fetch failed, continuing with the base table only",
				slog.String("error", err.Error()))
		} else {
			records = append(records, mirna...)
		}
	}

	edges := build.Collectri(records, opts)

	r.log.Info("Built complex-aware network",
		slog.String("organism", orgID.CommonName()),
		slog.Bool("split_complexes", opts.SplitComplexes),
		slog.Int("edges", len(edges)))

	return edges, nil
}

// Progeny assembles the pathway-response network for one organism,
// keeping the top most significant target genes per pathway.
func (r *Regnet) Progeny(ctx context.Context, org string, top int) ([]model.Edge, error) {
	records, err := r.Resource(ctx, "PROGENy", org)
	if err != nil {
		return nil, err
	}

	annotations, err := build.ParsePathwayAnnotations(records)
	if err != nil {
		return nil, helper.NewError("parse pathway annotations", err)
	}

	edges, err := build.Progeny(annotations, top)
	if err != nil {
		return nil, err
	}

	r.log.Info("Built pathway network", slog.Int("top", top), slog.Int("edges", len(edges)))

	return edges, nil
}

// KinaseSubstrate assembles the site-level enzyme-substrate network
// from phosphorylation and dephosphorylation records.
func (r *Regnet) KinaseSubstrate(ctx context.Context) ([]model.Edge, error) {
	records, err := r.Client.EnzymeSubstrates(ctx)
	if err != nil {
		var transient *omnipath.TransientError
		if !errors.As(err, &transient) {
			return nil, helper.NewError("fetch enzyme-substrate records", err)
		}
		r.log.Warn("Live fetch failed, falling back to static snapshot", slog.String("error", err.Error()))
		records, err = r.Client.StaticEnzymeSubstrates(ctx)
		if err != nil {
			return nil, helper.NewError("fetch static enzyme-substrate snapshot", err)
		}
	}

	edges := build.KinaseSubstrate(records)

	r.log.Info("Built enzyme-substrate network", slog.Int("edges", len(edges)))

	return edges, nil
}

// Resource fetches a named prior-knowledge annotation table. The
// resource name is validated against the registry when the registry is
// reachable; a registry failure only degrades validation. Live fetch
// failures fall back once to the static snapshot; when both fail the
// resource is reported as not available. Non-human organisms get their
// identifiers orthology-translated and mapped back to gene symbols.
func (r *Regnet) Resource(ctx context.Context, name string, org string) ([]model.AnnotationRecord, error) {
	orgID, err := r.resolveOrganism(ctx, org)
	if err != nil {
		return nil, err
	}

	known, err := r.Client.Resources(ctx)
	if err != nil {
		r.log.Warn("Resource registry check failed, proceeding without validation",
			slog.String("resource", name),
			slog.String("error", err.Error()))
	} else if _, ok := known[name]; !ok {
		return nil, &ResourceNotFoundError{Resource: name}
	}

	records, err := r.Client.Annotations(ctx, name, orgID)
	if err != nil {
		var transient *omnipath.TransientError
		if !errors.As(err, &transient) {
			return nil, helper.NewError("fetch annotations", err)
		}
		r.log.Warn("Live fetch failed, falling back to static snapshot",
			slog.String("resource", name),
			slog.String("error", err.Error()))
		staticRecords, staticErr := r.Client.StaticAnnotations(ctx, name, orgID)
		if staticErr != nil {
			return nil, &ResourceNotFoundError{Resource: name, Err: errors.Join(err, staticErr)}
		}
		records = staticRecords
	}

	if orgID != organism.Human {
		if r.Translator == nil {
			return nil, helper.NewError("translate annotations", fmt.Errorf("no translator configured for organism %s", orgID.CommonName()))
		}
		records, err = r.Translator.Orthology(records, "uniprot", orgID)
		if err != nil {
			return nil, helper.NewError("orthology translation", err)
		}
		records, err = r.Translator.ToSymbol(records, "uniprot", "genesymbol")
		if err != nil {
			return nil, helper.NewError("symbol translation", err)
		}
	}

	return records, nil
}

// resolveOrganism rejects unsupported organisms before any fetch so
// invalid input never costs a network round trip.
func (r *Regnet) resolveOrganism(ctx context.Context, org string) (organism.ID, error) {
	return organism.ResolveWith(ctx, r.registry, org)
}

// recoverInteractions runs the static fallback for a failed live
// interaction fetch when the failure was transient.
func (r *Regnet) recoverInteractions(fetchErr error, static func() ([]model.Interaction, error)) ([]model.Interaction, error) {
	var transient *omnipath.TransientError
	if !errors.As(fetchErr, &transient) {
		return nil, helper.NewError("fetch interactions", fetchErr)
	}
	r.log.Warn("Live fetch failed, falling back to static snapshot", slog.String("error", fetchErr.Error()))

	records, err := static()
	if err != nil {
		return nil, helper.NewError("fetch static interaction snapshot", err)
	}
	return records, nil
}
