package services

import (
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/repositories"
	"github.com/datazhang-hub/portfolio/pkg/logger"
)

// SeedService loads the sample portfolio entries on a fresh database
type SeedService struct {
	projectRepo *repositories.ProjectRepository
}

func NewSeedService(projectRepo *repositories.ProjectRepository) *SeedService {
	return &SeedService{
		projectRepo: projectRepo,
	}
}

// sampleProjects mirrors the demo entries the site originally shipped with.
// The third entry carries the legacy "analysis" type on purpose: old rows
// with it exist in production and the catalog has to tolerate them.
var sampleProjects = []*models.Project{
	{
		Title:       "电商店铺监控看板",
		Description: "基于 Power BI 开发的电商数据分析看板，实现店铺运营的实时监控。包含各类活动支付金额占比分析、活动横向对比、每日在线商品数和动销率趋势等多维度分析。",
		ImageURL:    "/images/project1.jpg",
		Tags:        []string{"Power BI", "电商数据", "运营分析", "数据可视化"},
		DemoURL:     "https://app.powerbi.com/view?r=eyJrIjoiMmVhNmJkZTUtMDc1OC00MmEzLTllZmItZTAwYWQ0OWRhMjA0In0",
		Type:        models.ProjectTypeVisualization,
		Date:        "2024-03-01",
	},
	{
		Title:       "城市达成率监控看板",
		Description: "基于 Power BI 开发的城市达成率监控看板，实时追踪各城市业务指标达成情况，帮助管理层快速了解各城市业务表现。",
		ImageURL:    "/images/project2.jpg",
		Tags:        []string{"Power BI", "数据可视化", "业务监控", "城市分析"},
		DemoURL:     "https://app.powerbi.com/view?r=eyJrIjoiZWNiNjY0NTAtNThmMS00N2I2LTk2OGQtYTRlZmVkNTQ4ODQzIn0",
		Type:        models.ProjectTypeVisualization,
		Date:        "2024-02-15",
	},
	{
		Title:       "数据分析项目",
		Description: "使用Python和Pandas进行的数据清洗、分析和可视化项目，通过多种统计方法挖掘数据价值，形成决策支持。",
		ImageURL:    "/images/project3.jpg",
		Tags:        []string{"Python", "Pandas", "数据分析", "可视化"},
		DemoURL:     "https://github.com/Datazhang-hub/DataShow",
		Type:        "analysis",
		Date:        "2024-01-20",
	},
}

// SeedIfEmpty inserts the sample projects when the table holds no data.
// Returns how many projects were created. Writes go through the repository,
// not the create path: the legacy-typed sample predates the type restriction
// and must land in the table the way it exists in production.
func (s *SeedService) SeedIfEmpty() (int, error) {
	count, err := s.projectRepo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	created := 0
	for _, sample := range sampleProjects {
		project := *sample
		project.Tags = append([]string{}, sample.Tags...)
		project.Status = models.ProjectStatusOnline
		project.AnalysisDepth = models.AnalysisDepthExploratory
		project.Industry = models.DefaultIndustry
		project.CreatedAt = now
		project.UpdatedAt = now

		if err := s.projectRepo.Create(&project); err != nil {
			return created, err
		}
		created++
	}

	logger.Infof("Seeded %d sample projects", created)
	return created, nil
}
