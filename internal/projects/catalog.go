package projects

var catalog = []Project{
	{
		ID:        "ai-motion-tracker",
		Title:     "Real-Time AI Motion Detection & Tracking System",
		Category:  "Computer Vision / Systems Engineering",
		Year:      "2025",
		Thumbnail: "/images/ai-vision/thumb.webp",
		HeroImage: "/images/ai-vision/hero.webp",
		Summary: Summary{
			Tagline: "Real-time surveillance system combining YOLOv8 detection, Deep SORT tracking, and motion heatmap analytics deployed via Flask web interface.",
			KeyTechnologies: []string{
				"YOLOv8 (nano) for object detection",
				"Deep SORT for multi-object tracking",
				"Kalman filtering & Hungarian matching",
				"Flask web server with real-time streaming",
				"OpenCV for video processing",
				"NumPy for heatmap generation",
			},
			Highlights: []Highlight{
				{"Detection Pipeline", "YOLOv8 nano with COCO pretrained weights for real-time person detection, with confidence thresholding to balance precision and recall."},
				{"Identity Tracking", "Deep SORT keeps identities across frames using Kalman motion prediction and appearance embeddings matched with the Hungarian algorithm."},
				{"Motion Analytics", "A cumulative spatial heatmap updated from tracked centroids shows movement patterns over time."},
				{"Behavioral Analysis", "Rule-based temporal persistence flags loitering inside confined regions."},
				{"Deployment", "Flask web application with browser video streaming, REST endpoints for motion statistics and GPU-enabled cloud compatibility."},
			},
			Metrics: []string{
				"12-18 FPS throughput on GPU environments",
				"90-130ms end-to-end latency (network-bound)",
				"25-35ms inference time per frame",
				">0.70 confidence for majority of detections",
			},
			Architecture: "Video Input → YOLOv8 Detection → Deep SORT Tracking → Heatmap Generation → Flask Web Streaming",
			Showcase: []Showcase{
				{"/images/ai-vision/architecture.webp", "System Architecture"},
				{"/images/ai-vision/detection.webp", "Object Detection Strategy"},
				{"/images/ai-vision/tracking.webp", "Multi-Object Tracking"},
				{"/images/ai-vision/heatmap.webp", "Motion Heatmap Analytics"},
				{"/images/ai-vision/results.webp", "Performance Results"},
			},
		},
		Sections: []Section{
			{"overview", "Overview", "A real-time surveillance system that detects, tracks and analyzes motion in live video. YOLOv8 detection, Deep SORT tracking and motion heatmaps turn raw feeds into spatial and behavioral insight, with sustained identity tracking and deployability as first-class goals."},
			{"problem", "Problem Statement & Motivation", "Background subtraction and frame differencing break down under lighting changes, shadows and background motion. Detection without tracking loses identity between frames, and tracking without detection lacks semantics. The pipeline answers what is moving, where, and for how long, in real time."},
			{"architecture", "System Architecture", "Frames go through YOLOv8, detections feed Deep SORT, tracking metadata updates a cumulative heatmap, and boxes, track ids and heatmaps stream to a Flask interface."},
			{"results", "Results & Performance Evaluation", "On GPU-backed environments the pipeline sustained 12-18 FPS with 90-130 ms end-to-end latency, dominated by the network. Inference stayed around 25-35 ms per frame."},
			{"limitations", "Limitations", "Heuristic behavioral rules can false-positive in congested scenes and the heatmap has no temporal decay yet."},
			{"future", "Future Directions & Impact", "Learned temporal anomaly detection, heatmap decay and semantic zoning are the next steps."},
		},
	},
	{
		ID:        "octawipe",
		Title:     "OctaWipe: Secure Data Sanitization",
		Category:  "System Security / Data Sanitization",
		Year:      "2025",
		Thumbnail: "/images/octawipe/thumb.webp",
		HeroImage: "/images/octawipe/hero.webp",
		Summary: Summary{
			Tagline: "Cross-platform data sanitization system with NIST/DoD compliance, bootable deployment, and blockchain-anchored verification certificates.",
			KeyTechnologies: []string{
				"shred, blkdiscard, nvme-cli for multi-method sanitization",
				"ATA Secure Erase & Cryptographic Erase",
				"Ubuntu 24.04 LTS Live Boot environment",
				"PXE network boot for bulk wiping",
				"Digital signature & blockchain anchoring",
				"PDF/JSON certificate generation",
			},
			Highlights: []Highlight{
				{"Storage-Aware Sanitization Engine", "Multi-pass shred for HDDs, ATA Secure Erase and blkdiscard for SSDs, nvme-cli for NVMe, with HPA/DCO handling."},
				{"Bootable Deployment Architecture", "Live USB, ISO and PXE boot make the wipe OS-independent and allow bulk sanitization of device fleets."},
				{"Automated Verification Layer", "Post-wipe checks validate completion, method integrity and device parameters."},
				{"Cryptographic Certification System", "Signed PDF and JSON certificates carry device metadata, method, logs and timestamps."},
				{"Blockchain-Anchored Trust Layer", "Certificate hashes anchored on a distributed ledger allow independent tamper detection."},
			},
			Metrics: []string{
				"NIST 800-88 & DoD 5220.22-M compliant",
				"Supports HDD, SSD, NVMe storage types",
				"Cross-platform: Windows, Linux, Android",
				"Bulk PXE wiping for enterprise scale",
				"Cryptographically verifiable certificates",
			},
			Architecture: "Web Portal/Local Boot → Device Detection → Storage-Type Routing → Sanitization Execution → Verification → Signed Certificate + Blockchain Anchoring",
			Showcase: []Showcase{
				{"/images/octawipe/goals.webp", "Project Goals & Design Constraints"},
				{"/images/octawipe/architecture.webp", "System Architecture"},
				{"/images/octawipe/sanitization.webp", "Bootable Deployment"},
				{"/images/octawipe/novelty.webp", "Network Wiping"},
			},
		},
		Sections: []Section{
			{"overview", "Overview", "OctaWipe securely erases storage devices so IT assets can be recycled and reused, aligned with international data destruction standards and wrapped in a one-click interface."},
			{"context-problem", "Context, Motivation & Problem Statement", "Devices are hoarded or discarded because owners cannot prove their data is gone. Existing tools are fragmented, OS-dependent and offer no verifiable proof of sanitization."},
			{"architecture", "System Architecture", "A portal leads into bootable execution over USB, ISO or PXE, which detects storage, applies the chosen method, verifies the wipe and issues a signed certificate."},
			{"verification-trust", "Verification, Certification & Tamper-Proof Trust Layer", "Verification is a first-class component. Signed certificates are issued in PDF and JSON and their hashes are anchored to a ledger so later alteration is detectable."},
			{"standards", "Standards Compliance", "NIST 800-88, DoD 5220.22-M (E) and DoD 5220.22-M (ECE)."},
			{"impact-future", "Impact, Benefits & Future Scope", "Verifiable erasure lets hardware be resold or refurbished safely. Next come policy-driven wipe recommendations and asset-management integration."},
		},
	},
}
