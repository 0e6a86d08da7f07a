package externalservices

import "context"

type ctxKey string

const (
	companyIDKey ctxKey = "companyID"
	recIDKey     ctxKey = "recID"
	withAuditKey ctxKey = "withAudit"
	uriKey       ctxKey = "uri"
	requestKey   ctxKey = "request"
)

type AuditData struct {
	CompanyID string
	Request   string
	Uri       string
	RecID     string
	WithAudit bool
}

func GetAuditContext(ctx context.Context, uri string, request []byte) context.Context {
	rCtx := context.WithValue(ctx, withAuditKey, true)
	rCtx = context.WithValue(rCtx, uriKey, uri)
	if len(request) != 0 {
		rCtx = context.WithValue(rCtx, requestKey, string(request))
	}
	return rCtx
}

// GetContextWithRecID компания и запись, по которой идет обращение во внешний сервис
func GetContextWithRecID(ctx context.Context, companyID, recID string) context.Context {
	ctx = context.WithValue(ctx, companyIDKey, companyID)
	return context.WithValue(ctx, recIDKey, recID)
}

func ExtractAuditData(ctx context.Context) AuditData {
	data := AuditData{}
	if ctx == nil {
		return data
	}
	data.CompanyID, _ = ctx.Value(companyIDKey).(string)
	data.Request, _ = ctx.Value(requestKey).(string)
	data.Uri, _ = ctx.Value(uriKey).(string)
	data.RecID, _ = ctx.Value(recIDKey).(string)
	data.WithAudit, _ = ctx.Value(withAuditKey).(bool)
	return data
}
