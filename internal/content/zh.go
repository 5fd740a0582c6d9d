package content

var zh = Dictionary{
	Locale: Chinese,
	Brand:  "龙新阳",
	PersonalInfo: PersonalInfo{
		Name:     "龙新阳",
		Role:     "生物信息工程师",
		Tagline:  "基因数据与代码之间的翻译官",
		Location: "中国 广西 / 湖南",
		Intro:    "流行病与卫生统计学博士研究生。擅长利用多组学数据（单细胞转录组、空间转录组、GWAS）解析复杂的生物学问题，搭建可复现的分析流程与数据可视化工具。",
		Bio: []string{
			"我是一名**流行病与卫生统计学**博士研究生，研究方向位于群体遗传学与细胞生物学的交汇处。日常工作是把原始测序数据转化为临床医生和实验室同事可以直接使用的结论。",
			"我的研究包括心脏修复过程的单细胞与空间转录组分析，以及基于英国生物银行和中国队列的大规模遗传流行病学研究：多基因风险评分、孟德尔随机化以及跨性状的遗传重叠。",
			"除了科研本身，我也负责计算环境的维护：Linux 服务器、环境模块、容器与流程管理工具，确保每一项分析都可以从干净的代码仓库重新运行。",
			"我会把学到的东西写成笔记，并开发一些小型交互工具，让产生数据的人也能亲自探索数据。",
		},
	},
	Navigation: Navigation{
		Home:     "首页",
		Projects: "代码仓库",
		Learning: "学习工具",
		Notes:    "笔记",
		About:    "关于",
		Contact:  "联系",
	},
	UI: UILabels{
		Greeting:           "你好，我是",
		ViewProjects:       "查看代码仓库",
		ReadNotes:          "阅读笔记",
		RepoSubtitle:       "以可复现代码仓库形式发布的分析流程与科研代码。",
		LearningSubtitle:   "用于探索组学数据的交互式应用与教学资料。",
		NotesSubtitle:      "技术笔记、教程以及关于生物信息学方法的思考。",
		ViewCode:           "查看代码",
		ViewDemo:           "在线演示",
		OpenTool:           "打开工具",
		ReadMore:           "阅读全文",
		VisitBlog:          "访问博客",
		AboutTitle:         "关于我",
		PublicationsTitle:  "代表性论文",
		DOILink:            "DOI 链接",
		ConnectTitle:       "保持联系",
		ConnectDesc:        "如果你对多组学分析或遗传流行病学方面的合作感兴趣，欢迎与我联系。",
		NamePlaceholder:    "姓名",
		EmailPlaceholder:   "邮箱",
		MessagePlaceholder: "留言内容",
		SendMessage:        "发送消息",
		RightsReserved:     "保留所有权利。",
		FooterText:         "使用 Go 构建，一个碱基一个碱基地解读生命。",
		LangToggle:         "切换到英文",
		LangSwitch:         "EN",
		ThemeToggle:        "切换主题",
		MenuToggle:         "切换菜单",
		Status: StatusLabels{
			Completed:     "已完成",
			InProgress:    "进行中",
			Published:     "已发表",
			UnderRevision: "修回中",
			InPreparation: "撰写中",
		},
	},
	Projects: []Project{
		{
			ID:          "p1",
			Title:       "猪心脏房间隔缺损修复图谱",
			Description: "搭建单细胞转录组与空间转录组分析流程，研究猪模型中房间隔缺损（ASD）的修复机制。完成细胞类型注释，并分析 5 个时间点的基因表达趋势。",
			Tags:        []TechStack{TechR, TechSingleCell, TechSpatial, TechLinux},
			GithubURL:   "https://github.com/longxinyang/pig-heart-atlas-demo",
			Status:      StatusInProgress,
		},
		{
			ID:          "p2",
			Title:       "心血管疾病遗传决定因素（UK Biobank）",
			Description: "利用英国生物银行与中国博白队列的大规模 GWAS 数据，研究慢性肾病（CKD）与心血管疾病（CVD）之间的遗传重叠。实现了多基因风险评分（PRS）计算与孟德尔随机化分析。",
			Tags:        []TechStack{TechPython, TechGWAS, TechR, TechBash},
			GithubURL:   "https://github.com/longxinyang/cvd-genetics-demo",
			Status:      StatusCompleted,
		},
		{
			ID:          "p3",
			Title:       "膀胱癌肿瘤微环境单细胞研究",
			Description: "基于单细胞测序数据分析膀胱癌肿瘤微环境的异质性，并负责服务器基础设施与生物信息分析环境的配置。",
			Tags:        []TechStack{TechR, TechSingleCell, TechLinux},
			GithubURL:   "https://github.com/longxinyang/bladder-cancer-sc",
			DemoURL:     "https://shiny.example.com/bladder-sc",
			Status:      StatusCompleted,
		},
	},
	LearningTools: []LearningTool{
		{
			ID:          "l1",
			Title:       "基因表达可视化工具",
			Description: "交互式 Shiny 应用，用于展示心脏组织在不同发育阶段的基因表达趋势。",
			Category:    "湿实验生物学家",
			URL:         "https://shiny.example.com/gene-exp",
		},
		{
			ID:          "l2",
			Title:       "FastQC 报告生成器",
			Description: "基于网页的二代测序质控指标自动报告工具。",
			Category:    "生物信息分析人员",
			URL:         "https://tools.example.com/fastqc-reporter",
		},
	},
	Notes: []Note{
		{
			ID:          "n1",
			Title:       "理解 Seurat v5 对象结构",
			Date:        "2023-10-15",
			Description: "深入解析 R 中的 S4 对象结构，以及如何高效地操作 assay 数据。",
			Tags:        []string{"R", "Seurat", "单细胞"},
			Link:        "https://blog.example.com/seurat-v5",
		},
		{
			ID:          "n2",
			Title:       "孟德尔随机化分析流程",
			Date:        "2023-09-01",
			Description: "使用 TwoSampleMR 进行流行病学因果推断的分步指南。",
			Tags:        []string{"统计学", "GWAS", "方法学"},
			Link:        "https://blog.example.com/mr-guide",
		},
		{
			ID:          "n3",
			Title:       "搭建生物信息学服务器",
			Date:        "2023-08-20",
			Description: "用户管理、环境模块以及 conda/singularity 容器的最佳实践。",
			Tags:        []string{"Linux", "运维", "高性能计算"},
			Link:        "https://blog.example.com/server-setup",
		},
	},
	Publications: []Publication{
		{
			ID:       "pub1",
			Citation: "Long, X., Yan, B., & Mo, Z. (2023). Uncovering the heterogeneity and cell fate decisions of endothelial cells after myocardial infarction by single-cell sequencing. iLABMED.",
			URL:      "https://doi.org/10.1002/med4.34",
			Status:   StatusPublished,
		},
		{
			ID:       "pub2",
			Citation: "Long, X., et al. (n.d.). Genetic and causal associations of primary aldosteronism with cardiac magnetic resonance traits. Under revision in European Journal of Preventive Cardiology.",
			Status:   StatusUnderRevision,
		},
	},
}
