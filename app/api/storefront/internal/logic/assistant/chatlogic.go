// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"EcoSage/app/api/storefront/internal/agent"
	"EcoSage/app/api/storefront/internal/svc"
	"EcoSage/app/api/storefront/internal/types"
	"EcoSage/app/common/consts/errno"
	"EcoSage/app/core/catalog"
	"EcoSage/app/core/intent"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		resp = &types.ChatResponse{
			StatusCode: errno.StatusOK,
			StatusMsg:  "success",
			MessageId:  uuid.NewString(),
			Content:    "Please enter a message.",
		}
		return
	}

	rows, err := l.svcCtx.ProductsModel.ListAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: load catalog failed: ", err)
		return nil, errors.New(int(errno.CatalogUnavailable), "catalog unavailable")
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToCatalog())
	}

	// The chat model decides between a product lookup and a general answer.
	// Any model failure falls back to the deterministic matcher.
	if l.svcCtx.Classifier != nil {
		if answer, ok := l.answerViaModel(message); ok {
			resp = &types.ChatResponse{
				StatusCode: errno.StatusOK,
				StatusMsg:  "success",
				MessageId:  uuid.NewString(),
				Content:    answer,
				Confidence: intent.ConfidenceCanned,
			}
			return
		}
	}

	matched := l.svcCtx.Matcher.Match(message, products)

	resp = &types.ChatResponse{
		StatusCode:  errno.StatusOK,
		StatusMsg:   "success",
		MessageId:   uuid.NewString(),
		Content:     matched.Message,
		Products:    toProductSlice(matched.Products),
		Confidence:  matched.Confidence,
		Suggestions: matched.Suggestions,
	}

	return
}

func (l *ChatLogic) answerViaModel(message string) (string, bool) {
	label, err := l.svcCtx.Classifier.Classify(l.ctx, message)
	if err != nil {
		l.Logger.Error("logic: classify message failed: ", err)
		return "", false
	}
	if label != agent.LabelInfo {
		return "", false
	}

	answer, err := l.svcCtx.Classifier.Answer(l.ctx, message)
	if err != nil {
		l.Logger.Error("logic: answer message failed: ", err)
		return "", false
	}

	return answer, true
}

func toProductSlice(products []catalog.Product) []types.Product {
	if len(products) == 0 {
		return nil
	}

	resp := make([]types.Product, 0, len(products))
	for _, p := range products {
		resp = append(resp, types.Product{
			Id:             p.Id,
			Name:           p.Name,
			Description:    p.Description,
			Price:          p.Price,
			Image:          p.Image,
			Category:       p.Category,
			EcoScore:       p.EcoScore,
			InStock:        p.InStock,
			Brand:          p.Brand,
			Tags:           p.Tags,
			Materials:      p.Materials,
			Certifications: p.Certifications,
		})
	}

	return resp
}
