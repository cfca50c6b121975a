// Package assistant orchestrates a conversation turn: store the utterance,
// re-derive the quotation record, decide between focused data collection and
// free generation, and attach ranked product suggestions.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quotation-engine/internal/catalog"
	"quotation-engine/internal/common/config"
	"quotation-engine/internal/common/logger"
	"quotation-engine/internal/common/metrics"
	"quotation-engine/internal/dialogue"
	"quotation-engine/internal/extract"
	"quotation-engine/internal/genai"
	"quotation-engine/internal/imaging"
	"quotation-engine/internal/models"
	"quotation-engine/internal/notify"
	"quotation-engine/internal/scoring"
	"quotation-engine/internal/store"
)

// Generator is the text/image generation collaborator; *genai.Client
// satisfies it.
type Generator interface {
	Chat(ctx context.Context, history []models.Message, products []catalog.Item, maxHistory int) (string, error)
	DescribeImage(ctx context.Context, imageBase64 string) (string, error)
}

// focusThreshold: with this many or fewer slots missing, the turn switches
// from free generation to the planner's targeted data collection.
const focusThreshold = 2

// imageSampleCategories drives the category-diverse suggestions returned for
// image uploads.
var imageSampleCategories = []string{"electronics", "bags", "drinkware", "clothing", "premium", "home appliances"}

type Service struct {
	store      store.Store
	catalog    []catalog.Item
	gen        Generator
	mailer     notify.Mailer // nil when notifications are disabled
	baseDomain string
	maxHistory int
	logger     logger.Logger
}

func NewService(s store.Store, items []catalog.Item, gen Generator, mailer notify.Mailer, cfg *config.Config, log logger.Logger) *Service {
	return &Service{
		store:      s,
		catalog:    items,
		gen:        gen,
		mailer:     mailer,
		baseDomain: cfg.Catalog.BaseDomain,
		maxHistory: cfg.Conversation.MaxHistory,
		logger:     log.WithFields(map[string]interface{}{"component": "assistant"}),
	}
}

// ProcessText handles one inbound user utterance and produces the full chat
// payload. conversationID may be empty; the effective id is returned in the
// payload.
func (s *Service) ProcessText(ctx context.Context, conversationID, message string) (*ChatResponse, error) {
	id, history, err := s.store.Append(ctx, conversationID, models.Message{
		Role:    models.RoleUser,
		Content: message,
	})
	if err != nil {
		return nil, err
	}

	record := extract.Extract(history)
	missing := record.Missing()

	metrics.MessagesProcessed.WithLabelValues("text").Inc()
	metrics.SlotsExtracted.Observe(float64(record.SetCount()))

	var reply string
	var suggested []catalog.Item

	// Close to a full record: prioritize data collection over product talk.
	if len(missing) <= focusThreshold {
		reply = dialogue.NextPrompt(&record)
		suggested = scoring.Score(message, s.catalog, 2)
	} else {
		relevant := scoring.Score(message, s.catalog, 5)
		reply, err = s.gen.Chat(ctx, history, relevant, s.maxHistory)
		if err != nil {
			metrics.UpstreamFallbacks.WithLabelValues("chat").Inc()
			s.logger.Warn("generation failed, using fallback", map[string]interface{}{
				"conversationId": id,
				"error":          err.Error(),
			})
			reply = genai.FallbackResponse(message)
		}
		if len(relevant) > 3 {
			relevant = relevant[:3]
		}
		suggested = relevant
	}

	if _, _, err := s.store.Append(ctx, id, models.Message{
		Role:    models.RoleAssistant,
		Content: reply,
	}); err != nil {
		return nil, err
	}

	if record.IsComplete() {
		metrics.QuotationsCompleted.Inc()
		s.notifyComplete(id, &record, history)
	}

	return &ChatResponse{
		Response:       reply,
		Products:       viewsOf(suggested, s.baseDomain),
		ConversationID: id,
		QuotationData:  record,
		DataCompletion: record.Completion() + " complete",
	}, nil
}

// ProcessImage handles an uploaded image: describe it via the vision model
// and suggest category-diverse products. Decode failures degrade to a
// friendly reply with default suggestions, never an error.
func (s *Service) ProcessImage(ctx context.Context, raw []byte) *ImageResponse {
	metrics.MessagesProcessed.WithLabelValues("image").Inc()

	imageBase64, decodeErr := imaging.EncodeForVision(raw)
	if decodeErr != nil {
		s.logger.Warn("image decode failed", map[string]interface{}{"error": decodeErr.Error()})
		fallbackItems := s.catalog
		if len(fallbackItems) > 3 {
			fallbackItems = fallbackItems[:3]
		}
		return &ImageResponse{
			Response: "I couldn't process this image. Please try another or describe what you're looking for.",
			Products: viewsOf(fallbackItems, s.baseDomain),
		}
	}

	description, err := s.gen.DescribeImage(ctx, imageBase64)
	if err != nil {
		metrics.UpstreamFallbacks.WithLabelValues("vision").Inc()
		description = genai.FallbackVisionResponse
	}

	return &ImageResponse{
		Response: description,
		Products: viewsOf(s.sampleByCategory(3), s.baseDomain),
	}
}

// sampleByCategory picks at most limit products spanning the sample
// categories, padding from catalog order when the categories are thin.
func (s *Service) sampleByCategory(limit int) []catalog.Item {
	var picked []catalog.Item
	used := make(map[string]bool)

	for _, category := range imageSampleCategories {
		for _, item := range s.catalog {
			if used[item.Name] {
				continue
			}
			if strings.Contains(strings.ToLower(item.Category), category) ||
				strings.Contains(strings.ToLower(item.Name), category) {
				picked = append(picked, item)
				used[item.Name] = true
				break
			}
		}
		if len(picked) >= limit {
			return picked[:limit]
		}
	}

	for _, item := range s.catalog {
		if len(picked) >= limit {
			break
		}
		if !used[item.Name] {
			picked = append(picked, item)
			used[item.Name] = true
		}
	}
	return picked
}

// QuotationStatus reports collection progress for one conversation.
func (s *Service) QuotationStatus(ctx context.Context, conversationID string) (*StatusResponse, error) {
	history, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	record := extract.Extract(history)
	return &StatusResponse{
		ConversationID:   conversationID,
		QuotationData:    record,
		CompletionStatus: record.Completion(),
		MissingFields:    record.Missing(),
		IsComplete:       record.IsComplete(),
	}, nil
}

// ExportQuotation packages a conversation's record and transcript for team
// processing.
func (s *Service) ExportQuotation(ctx context.Context, conversationID string) (*ExportResponse, error) {
	history, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	record := extract.Extract(history)
	return buildExport(conversationID, &record, history, time.Now()), nil
}

// AllQuotations builds the admin roll-up over every live conversation,
// skipping conversations where nothing has been collected yet.
func (s *Service) AllQuotations(ctx context.Context) (*AllQuotationsResponse, error) {
	entries, err := s.store.Entries(ctx)
	if err != nil {
		return nil, err
	}

	resp := &AllQuotationsResponse{Quotations: []QuotationSummary{}}
	for id, entry := range entries {
		if len(entry.Messages) == 0 {
			continue
		}

		record := extract.Extract(entry.Messages)
		if record.SetCount() == 0 {
			continue
		}

		summary := QuotationSummary{
			ConversationID:   id,
			CompletionStatus: record.Completion(),
			IsComplete:       record.IsComplete(),
			CustomerEmail:    record.CustomerEmail,
			CompanyName:      record.CompanyName,
			Occasion:         record.Occasion,
			LastActivity:     entry.LastActivity.Format("2006-01-02 15:04:05"),
		}
		resp.Quotations = append(resp.Quotations, summary)
		if summary.IsComplete {
			resp.CompleteQuotations++
		} else {
			resp.IncompleteQuotations++
		}
	}
	resp.TotalConversations = len(resp.Quotations)
	return resp, nil
}

// notifyComplete mails the export to the sales inbox off the request path.
func (s *Service) notifyComplete(conversationID string, record *extract.QuotationRecord, history []models.Message) {
	if s.mailer == nil {
		return
	}

	export := buildExport(conversationID, record, history, time.Now())
	subject := fmt.Sprintf("Quotation ready: %s (%s)", record.CompanyName, conversationID)
	body := formatExportBody(export)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.SendQuotationExport(ctx, subject, body); err != nil {
			s.logger.Error("quotation notification failed", map[string]interface{}{
				"conversationId": conversationID,
				"error":          err.Error(),
			})
		}
	}()
}

const notCollected = "NOT COLLECTED"

func buildExport(conversationID string, record *extract.QuotationRecord, history []models.Message, now time.Time) *ExportResponse {
	missing := record.Missing()

	summary := make([]string, 0, len(history))
	for _, msg := range history {
		if msg.Role == models.RoleUser {
			summary = append(summary, "Customer: "+msg.Content)
		} else {
			summary = append(summary, "Mary: "+msg.Content)
		}
	}

	nextSteps := "Generate quotation and send to customer"
	if len(missing) > 0 {
		labels := make([]string, 0, len(missing))
		for _, slot := range missing {
			labels = append(labels, string(slot))
		}
		nextSteps = "Collect remaining information: " + strings.Join(labels, ", ")
	}

	return &ExportResponse{
		Timestamp:      now.Format("2006-01-02 15:04:05"),
		ConversationID: conversationID,
		QuotationReady: record.IsComplete(),
		CustomerDetails: CustomerDetails{
			Email:          orPlaceholder(record.CustomerEmail),
			Company:        orPlaceholder(record.CompanyName),
			BudgetPerPack:  orPlaceholder(record.BudgetPerPack),
			NumberOfPacks:  orPlaceholder(record.NumberOfPacks),
			Occasion:       orPlaceholder(record.Occasion),
			SpecialRequest: orPlaceholder(record.SpecialRequests),
		},
		MissingInformation:  missing,
		ConversationSummary: summary,
		NextSteps:           nextSteps,
	}
}

func formatExportBody(export *ExportResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quotation export %s (%s)\n\n", export.ConversationID, export.Timestamp)
	fmt.Fprintf(&b, "Company: %s\nEmail: %s\nOccasion: %s\nQuantity: %s\nBudget per pack: %s\nSpecial requests: %s\n\n",
		export.CustomerDetails.Company,
		export.CustomerDetails.Email,
		export.CustomerDetails.Occasion,
		export.CustomerDetails.NumberOfPacks,
		export.CustomerDetails.BudgetPerPack,
		export.CustomerDetails.SpecialRequest,
	)
	fmt.Fprintf(&b, "Next steps: %s\n\nTranscript:\n%s\n", export.NextSteps, strings.Join(export.ConversationSummary, "\n"))
	return b.String()
}

func orPlaceholder(value string) string {
	if value == "" {
		return notCollected
	}
	return value
}
