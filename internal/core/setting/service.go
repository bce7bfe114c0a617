// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import "context"

// Service exposes typed setting groups.
type Service struct {
	repo Repository
}

// NewService constructs a new setting [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Website returns the website settings, filling in defaults for missing keys.
func (service *Service) Website(ctx context.Context) (*Website, error) {
	values, err := service.repo.FindGroup(ctx, GroupWebsite)
	if err != nil {
		return nil, err
	}

	website := &Website{Name: DefaultWebsiteName, Description: DefaultWebsiteDescription}
	if name, ok := values["name"]; ok {
		website.Name = name
	}
	if description, ok := values["description"]; ok {
		website.Description = description
	}

	return website, nil
}
