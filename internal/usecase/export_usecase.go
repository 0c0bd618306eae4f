package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"talento-joven/internal/pkg/pdf"
	"talento-joven/internal/render"
)

type ExportUsecase interface {
	ExportCV(ctx context.Context, userID uuid.UUID, template string) ([]byte, string, error)
	ExportCoverLetter(ctx context.Context, userID uuid.UUID, template string) ([]byte, string, error)
}

// Export turns builder documents into downloadable PDFs. Pending edits
// are flushed first so the export never trails the editor.
type Export struct {
	cvs       CVUsecase
	letters   CoverLetterUsecase
	converter pdf.Converter
	logger    *log.Logger
	now       func() time.Time
}

func NewExportUsecase(cvs CVUsecase, letters CoverLetterUsecase, converter pdf.Converter, logger *log.Logger) *Export {
	return &Export{cvs: cvs, letters: letters, converter: converter, logger: logger, now: time.Now}
}

func (u *Export) ExportCV(ctx context.Context, userID uuid.UUID, template string) ([]byte, string, error) {
	id, err := render.ParseTemplateID(template)
	if err != nil {
		return nil, "", ErrInvalidInput
	}

	u.cvs.FlushPending(userID)
	doc, err := u.cvs.GetDocument(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	html, err := render.RenderCV(doc, id)
	if err != nil {
		return nil, "", ErrInternal
	}

	out, err := u.convert(ctx, html)
	if err != nil {
		return nil, "", err
	}
	return out, render.ExportFilename(render.DocTypeCV, doc, id), nil
}

func (u *Export) ExportCoverLetter(ctx context.Context, userID uuid.UUID, template string) ([]byte, string, error) {
	id, err := render.ParseTemplateID(template)
	if err != nil {
		return nil, "", ErrInvalidInput
	}

	u.letters.FlushPending(userID)
	u.cvs.FlushPending(userID)

	letter, err := u.letters.GetLetter(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	doc, err := u.cvs.GetDocument(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	html, err := render.RenderCoverLetter(letter, doc, id, u.now())
	if err != nil {
		return nil, "", ErrInternal
	}

	out, err := u.convert(ctx, html)
	if err != nil {
		return nil, "", err
	}
	return out, render.ExportFilename(render.DocTypeCoverLetter, doc, id), nil
}

func (u *Export) convert(ctx context.Context, html string) ([]byte, error) {
	if u.converter == nil {
		return nil, ErrInternal
	}
	out, err := u.converter.ConvertHTMLToPDF(ctx, html)
	if err != nil {
		if u.logger != nil && !errors.Is(err, context.Canceled) {
			u.logger.Printf("[Export] pdf conversion failed | err=%v", err)
		}
		return nil, ErrInternal
	}
	return out, nil
}
