// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/inkwell/internal/core/setting"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/cache"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
)

// FeedGenerator is written into the <generator> element.
const FeedGenerator = "inkwell"

// WebsiteSource provides the channel title and description. Satisfied by [*setting.Service].
type WebsiteSource interface {
	Website(ctx context.Context) (*setting.Website, error)
}

// FeedBuilder renders the RSS 2.0 document of recent articles and keeps it
// in the shared cache.
type FeedBuilder struct {
	articles *Service
	website  WebsiteSource
	cache    *cache.Store
	scheme   string
}

// NewFeedBuilder creates a [FeedBuilder]. scheme is "http://" or "https://".
func NewFeedBuilder(articles *Service, website WebsiteSource, store *cache.Store, scheme string) *FeedBuilder {
	return &FeedBuilder{articles: articles, website: website, cache: store, scheme: scheme}
}

/*
Feed returns the cached RSS document, building it on a miss.

The cache key does not include host, so the first host to build the feed
is the one its links point at until the entry expires.
*/
func (builder *FeedBuilder) Feed(ctx context.Context, host string) ([]byte, error) {
	return builder.cache.GetOrCompute(ctx, constants.CacheKeyArticleFeed, constants.FeedMaxAge,
		func(ctx context.Context) ([]byte, error) {
			document, err := builder.Build(ctx, host)
			if err != nil {
				return nil, err
			}
			return []byte(document), nil
		})
}

// Build renders the feed without consulting the cache.
func (builder *FeedBuilder) Build(ctx context.Context, host string) (string, error) {
	website, err := builder.website.Website(ctx)
	if err != nil {
		return "", err
	}

	articles, err := builder.articles.Recent(ctx, constants.FeedMaxItems)
	if err != nil {
		return "", err
	}

	var lastPublishAt int64
	if len(articles) > 0 {
		lastPublishAt = articles[0].PublishAt
	}

	var rss strings.Builder
	rss.WriteString("<?xml version=\"1.0\"?>\n")
	rss.WriteString("<rss version=\"2.0\"><channel><title>")
	rss.WriteString(cdata(website.Name))
	rss.WriteString("</title><link>")
	rss.WriteString(builder.scheme + host + "/")
	rss.WriteString("</link><description>")
	rss.WriteString(cdata(website.Description))
	rss.WriteString("</description><lastBuildDate>")
	rss.WriteString(rssDate(lastPublishAt))
	rss.WriteString("</lastBuildDate><generator>" + FeedGenerator + "</generator><ttl>")
	rss.WriteString(strconv.Itoa(int(constants.FeedMaxAge / time.Second)))
	rss.WriteString("</ttl>")

	for _, article := range articles {
		content, err := builder.articles.texts.Get(ctx, article.ContentID)
		if err != nil {
			return "", err
		}

		rendered, err := builder.articles.renderer.ToHTML(content.Value)
		if err != nil {
			return "", apperr.Internal(err)
		}

		url := builder.scheme + host + "/article/" + article.ID
		rss.WriteString("<item><title>")
		rss.WriteString(cdata(article.Name))
		rss.WriteString("</title><link>")
		rss.WriteString(url)
		rss.WriteString("</link><guid>")
		rss.WriteString(url)
		rss.WriteString("</guid><author>")
		rss.WriteString(cdata(article.UserName))
		rss.WriteString("</author><pubDate>")
		rss.WriteString(rssDate(article.PublishAt))
		rss.WriteString("</pubDate><description>")
		rss.WriteString(cdata(rendered))
		rss.WriteString("</description></item>")
	}

	rss.WriteString("</channel></rss>")

	ctxutil.GetLogger(ctx).InfoContext(ctx, "feed_generated",
		slog.Int("items", len(articles)),
		slog.String("host", host),
	)

	return rss.String(), nil
}

// cdata wraps value in a CDATA section, splitting any "]]>" it contains.
func cdata(value string) string {
	return "<![CDATA[" + strings.ReplaceAll(value, "]]>", "]]]]><![CDATA[>") + "]]>"
}

// rssDate formats epoch milliseconds as an RFC 1123 date in GMT.
func rssDate(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(http.TimeFormat)
}
