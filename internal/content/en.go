package content

var en = Dictionary{
	Locale: English,
	Brand:  "LongXinyang",
	PersonalInfo: PersonalInfo{
		Name:     "Long Xinyang",
		Role:     "Bioinformatics Engineer",
		Tagline:  "Translator between genomic data and code",
		Location: "Guangxi / Hunan, China",
		Intro: `PhD Candidate in Epidemiology & Biostatistics. I specialize in deciphering complex biological
questions using multi-omics data (Single-cell RNA-seq, Spatial Transcriptomics, GWAS). I build
reproducible analysis pipelines and data visualization tools.`,
		Bio: []string{
			"I am a PhD candidate in **Epidemiology & Biostatistics** working where population-scale genetics meets cell-level biology. Most of my days are spent turning raw sequencing output into results a clinician or a wet-lab colleague can act on.",
			"My research covers single-cell and spatial transcriptomics of cardiac repair, and large-scale genetic epidemiology with UK Biobank and Chinese cohorts: polygenic risk scores, Mendelian randomization and cross-trait genetic overlap.",
			"Alongside the science I look after the computing side: Linux servers, environment modules, containers and workflow managers, so that every analysis can be rerun from a clean checkout.",
			"I write notes on what I learn and build small interactive tools so that the people who generate the data can explore it themselves.",
		},
	},
	Navigation: Navigation{
		Home:     "Home",
		Projects: "Repositories",
		Learning: "Learning Tools",
		Notes:    "Notes",
		About:    "About",
		Contact:  "Contact",
	},
	UI: UILabels{
		Greeting:           "Hi, I'm",
		ViewProjects:       "View Repositories",
		ReadNotes:          "Read Notes",
		RepoSubtitle:       "Analysis pipelines and research code, published as reproducible repositories.",
		LearningSubtitle:   "Interactive apps and teaching material for exploring omics data.",
		NotesSubtitle:      "Technical notes, tutorials, and thoughts on bioinformatics methodology.",
		ViewCode:           "View Code",
		ViewDemo:           "Live Demo",
		OpenTool:           "Open Tool",
		ReadMore:           "Read more",
		VisitBlog:          "Visit the blog",
		AboutTitle:         "About Me",
		PublicationsTitle:  "Selected Publications",
		DOILink:            "DOI Link",
		ConnectTitle:       "Let's Connect",
		ConnectDesc:        "Interested in collaboration on multi-omics analysis or genetic epidemiology? Feel free to reach out.",
		NamePlaceholder:    "Name",
		EmailPlaceholder:   "Email",
		MessagePlaceholder: "Message",
		SendMessage:        "Send Message",
		RightsReserved:     "All rights reserved.",
		FooterText:         "Built with Go, decoding life one base pair at a time.",
		LangToggle:         "Switch to Chinese",
		LangSwitch:         "CN",
		ThemeToggle:        "Toggle theme",
		MenuToggle:         "Toggle menu",
		Status: StatusLabels{
			Completed:     "Completed",
			InProgress:    "In Progress",
			Published:     "Published",
			UnderRevision: "Under Revision",
			InPreparation: "In Preparation",
		},
	},
	Projects: []Project{
		{
			ID:          "p1",
			Title:       "Pig Heart ASD Repair Atlas",
			Description: "Developed analysis pipelines for scRNA-seq and spatial transcriptomics to study atrial septal defect (ASD) repair mechanisms in porcine models. Annotated cell types and analyzed gene expression trends across 5 timepoints.",
			Tags:        []TechStack{TechR, TechSingleCell, TechSpatial, TechLinux},
			GithubURL:   "https://github.com/longxinyang/pig-heart-atlas-demo",
			Status:      StatusInProgress,
		},
		{
			ID:          "p2",
			Title:       "CVD Genetic Determinants (UK Biobank)",
			Description: "Investigated genetic overlaps between Chronic Kidney Disease (CKD) and Cardiovascular Disease (CVD) using large-scale GWAS data from UK Biobank and China Bobai Cohort. Implemented Polygenic Risk Score (PRS) calculations and Mendelian Randomization.",
			Tags:        []TechStack{TechPython, TechGWAS, TechR, TechBash},
			GithubURL:   "https://github.com/longxinyang/cvd-genetics-demo",
			Status:      StatusCompleted,
		},
		{
			ID:          "p3",
			Title:       "Single-Cell Bladder Cancer Microenvironment",
			Description: "Analyzed tumor microenvironment heterogeneity in bladder cancer using single-cell sequencing data. Managed server infrastructure and bioinformatics environment configuration.",
			Tags:        []TechStack{TechR, TechSingleCell, TechLinux},
			GithubURL:   "https://github.com/longxinyang/bladder-cancer-sc",
			DemoURL:     "https://shiny.example.com/bladder-sc",
			Status:      StatusCompleted,
		},
	},
	LearningTools: []LearningTool{
		{
			ID:          "l1",
			Title:       "GeneExp Visualizer",
			Description: "An interactive Shiny app to visualize gene expression trends across different developmental stages in cardiac tissue.",
			Category:    "Wet-lab Biologists",
			URL:         "https://shiny.example.com/gene-exp",
		},
		{
			ID:          "l2",
			Title:       "FastQC-Reporter",
			Description: "Web-based automated reporting tool for NGS quality control metrics.",
			Category:    "Bioinformaticians",
			URL:         "https://tools.example.com/fastqc-reporter",
		},
	},
	Notes: []Note{
		{
			ID:          "n1",
			Title:       "Understanding Seurat v5 Object Structure",
			Date:        "2023-10-15",
			Description: "A deep dive into the S4 object structure in R and how to manipulate assay data efficiently.",
			Tags:        []string{"R", "Seurat", "Single-cell"},
			Link:        "https://blog.example.com/seurat-v5",
		},
		{
			ID:          "n2",
			Title:       "Mendelian Randomization Analysis Pipeline",
			Date:        "2023-09-01",
			Description: "Step-by-step guide to TwoSampleMR for causal inference in epidemiology.",
			Tags:        []string{"Statistics", "GWAS", "Methodology"},
			Link:        "https://blog.example.com/mr-guide",
		},
		{
			ID:          "n3",
			Title:       "Setting up a Bioinformatics Server",
			Date:        "2023-08-20",
			Description: "Best practices for user management, environment modules, and conda/singularity containers.",
			Tags:        []string{"Linux", "DevOps", "HPC"},
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
