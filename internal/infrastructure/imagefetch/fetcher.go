package imagefetch

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// Fetcher downloads raw image bytes so a selected photo can be inlined.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher(client *resty.Client) *Fetcher {
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderUnavailable, "image fetch failed", err, "")
	}
	if resp.IsError() {
		return nil, "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderRequest,
			fmt.Sprintf("image fetch returned status %d", resp.StatusCode()), nil, "")
	}
	return resp.Bytes(), resp.Header().Get("Content-Type"), nil
}
