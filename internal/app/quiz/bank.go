// internal/app/quiz/bank.go
package quiz

import "github.com/skillswap/skillswap/internal/app/skills"

// BankSize is the number of authored questions each category ships with.
// QuestionsPerQuiz of them are offered per attempt.
const (
	BankSize         = 12
	QuestionsPerQuiz = 10
	PassingScore     = 7
)

// BankQuestion is one authored multiple-choice question. AnswerIndex points
// at the correct entry in Options.
type BankQuestion struct {
	Text        string
	Options     [4]string
	AnswerIndex int
}

// Bank returns the authored question set for a category, or nil when the
// category has none (surfaced to callers as ErrNoQuiz).
func Bank(categoryName string) []BankQuestion {
	return questionBank[categoryName]
}

var questionBank = map[string][]BankQuestion{
	skills.FullStack: {
		{
			Text:        "Which HTTP method is conventionally used to update an existing resource in a REST API?",
			Options:     [4]string{"GET", "PUT", "OPTIONS", "HEAD"},
			AnswerIndex: 1,
		},
		{
			Text:        "In React, which hook is used to hold local component state?",
			Options:     [4]string{"useEffect", "useContext", "useState", "useRef"},
			AnswerIndex: 2,
		},
		{
			Text:        "What does the CSS property 'display: flex' enable?",
			Options:     [4]string{"Grid-based layout", "Flexible box layout", "Absolute positioning", "Print styling"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which status code indicates a resource was created successfully?",
			Options:     [4]string{"200", "201", "301", "404"},
			AnswerIndex: 1,
		},
		{
			Text:        "In Node.js, which object is used to handle asynchronous results natively?",
			Options:     [4]string{"Callback", "Thread", "Promise", "Mutex"},
			AnswerIndex: 2,
		},
		{
			Text:        "What does SQL's JOIN clause do?",
			Options:     [4]string{"Deletes duplicate rows", "Combines rows from related tables", "Creates an index", "Starts a transaction"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which of these is a statically typed superset of JavaScript?",
			Options:     [4]string{"CoffeeScript", "TypeScript", "Elm", "Dart"},
			AnswerIndex: 1,
		},
		{
			Text:        "In an Express app, what is middleware?",
			Options:     [4]string{"A database driver", "A function that runs between request and response", "A CSS framework", "A deployment tool"},
			AnswerIndex: 1,
		},
		{
			Text:        "What does the 'C' in MVC stand for?",
			Options:     [4]string{"Component", "Controller", "Container", "Compiler"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which HTML element is semantically correct for the main navigation links?",
			Options:     [4]string{"<div>", "<nav>", "<section>", "<span>"},
			AnswerIndex: 1,
		},
		{
			Text:        "GraphQL differs from REST primarily because clients can…",
			Options:     [4]string{"skip authentication", "request exactly the fields they need", "avoid HTTP entirely", "write to the database directly"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which storage mechanism persists in the browser after it is closed?",
			Options:     [4]string{"sessionStorage", "localStorage", "a JavaScript variable", "the call stack"},
			AnswerIndex: 1,
		},
	},
	skills.DataAI: {
		{
			Text:        "Which Python library is the de facto standard for tabular data manipulation?",
			Options:     [4]string{"Flask", "Pandas", "Pygame", "Requests"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is overfitting?",
			Options:     [4]string{"A model that is too slow to train", "A model that memorizes training data and generalizes poorly", "A model with too few parameters", "A model trained on too much data"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which of these is a supervised learning task?",
			Options:     [4]string{"Clustering", "Spam classification", "Dimensionality reduction", "Anomaly detection without labels"},
			AnswerIndex: 1,
		},
		{
			Text:        "What does a confusion matrix summarize?",
			Options:     [4]string{"Feature correlations", "Classification results vs. true labels", "Training time per epoch", "Memory usage"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which SQL clause filters rows after aggregation?",
			Options:     [4]string{"WHERE", "HAVING", "ORDER BY", "LIMIT"},
			AnswerIndex: 1,
		},
		{
			Text:        "Gradient descent is used to…",
			Options:     [4]string{"normalize inputs", "minimize a loss function", "shuffle the dataset", "encode categorical features"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which metric is most appropriate for a heavily imbalanced binary classifier?",
			Options:     [4]string{"Accuracy", "F1 score", "Mean squared error", "R²"},
			AnswerIndex: 1,
		},
		{
			Text:        "In NumPy, what does broadcasting refer to?",
			Options:     [4]string{"Sending arrays over the network", "Automatic expansion of array shapes in arithmetic", "Parallel thread execution", "Saving arrays to disk"},
			AnswerIndex: 1,
		},
		{
			Text:        "A train/test split exists primarily to…",
			Options:     [4]string{"speed up training", "estimate performance on unseen data", "reduce dataset size", "balance class labels"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which of these is a deep learning framework?",
			Options:     [4]string{"PyTorch", "Matplotlib", "BeautifulSoup", "Celery"},
			AnswerIndex: 0,
		},
		{
			Text:        "What does tokenization mean in natural language processing?",
			Options:     [4]string{"Encrypting text", "Splitting text into units such as words or subwords", "Translating between languages", "Compressing a corpus"},
			AnswerIndex: 1,
		},
		{
			Text:        "The median is preferred over the mean when the data…",
			Options:     [4]string{"is normally distributed", "contains strong outliers", "is categorical", "has no variance"},
			AnswerIndex: 1,
		},
	},
	skills.CloudInfra: {
		{
			Text:        "What is a Docker image?",
			Options:     [4]string{"A running process", "A read-only template used to create containers", "A virtual machine snapshot", "A network volume"},
			AnswerIndex: 1,
		},
		{
			Text:        "In Kubernetes, which object is the smallest deployable unit?",
			Options:     [4]string{"Node", "Pod", "Service", "Namespace"},
			AnswerIndex: 1,
		},
		{
			Text:        "What does Infrastructure as Code (e.g. Terraform) provide?",
			Options:     [4]string{"Manual server configuration", "Declarative, version-controlled infrastructure", "Faster CPUs", "Automatic code review"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which AWS service provides object storage?",
			Options:     [4]string{"EC2", "S3", "RDS", "Lambda"},
			AnswerIndex: 1,
		},
		{
			Text:        "A CI pipeline's primary job is to…",
			Options:     [4]string{"serve production traffic", "build and test every change automatically", "provision user laptops", "rotate TLS certificates"},
			AnswerIndex: 1,
		},
		{
			Text:        "In Linux, which command shows running processes?",
			Options:     [4]string{"ls", "ps", "cat", "pwd"},
			AnswerIndex: 1,
		},
		{
			Text:        "What does horizontal scaling mean?",
			Options:     [4]string{"Adding more machines", "Adding more RAM to one machine", "Upgrading the CPU", "Reducing disk usage"},
			AnswerIndex: 0,
		},
		{
			Text:        "A reverse proxy such as Nginx typically…",
			Options:     [4]string{"runs browser JavaScript", "forwards client requests to backend servers", "compiles application code", "stores relational data"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is a container registry?",
			Options:     [4]string{"A list of running containers", "A storage service for container images", "A Kubernetes scheduler", "A log aggregator"},
			AnswerIndex: 1,
		},
		{
			Text:        "Serverless computing means…",
			Options:     [4]string{"no servers exist anywhere", "the provider manages servers; you deploy functions", "code runs in the browser", "the app has no backend"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which tool is an open-source configuration management system?",
			Options:     [4]string{"Ansible", "Photoshop", "Webpack", "Postman"},
			AnswerIndex: 0,
		},
		{
			Text:        "Redis is best described as…",
			Options:     [4]string{"a relational database", "an in-memory key-value store", "a message queue only", "a filesystem"},
			AnswerIndex: 1,
		},
	},
	skills.Mobile: {
		{
			Text:        "Which language is primary for modern iOS development?",
			Options:     [4]string{"Objective-C", "Swift", "Kotlin", "Java"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which language did Google designate as preferred for Android?",
			Options:     [4]string{"Kotlin", "Dart", "C++", "Ruby"},
			AnswerIndex: 0,
		},
		{
			Text:        "Flutter applications are written in…",
			Options:     [4]string{"JavaScript", "Dart", "Swift", "C#"},
			AnswerIndex: 1,
		},
		{
			Text:        "React Native renders UI using…",
			Options:     [4]string{"a WebView only", "native platform components", "server-side HTML", "OpenGL exclusively"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is an APK?",
			Options:     [4]string{"An iOS binary", "The Android application package format", "A Kotlin compiler", "A phone emulator"},
			AnswerIndex: 1,
		},
		{
			Text:        "In mobile apps, what is the purpose of a lifecycle method such as onPause?",
			Options:     [4]string{"Styling the UI", "Reacting to app/activity state changes", "Declaring permissions", "Signing the binary"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which store distributes iOS applications?",
			Options:     [4]string{"Google Play", "App Store", "F-Droid", "Steam"},
			AnswerIndex: 1,
		},
		{
			Text:        "SwiftUI builds interfaces using…",
			Options:     [4]string{"XML layouts", "a declarative Swift syntax", "storyboards only", "HTML templates"},
			AnswerIndex: 1,
		},
		{
			Text:        "What problem do cross-platform frameworks primarily solve?",
			Options:     [4]string{"Faster CPUs", "One codebase for multiple platforms", "Smaller screens", "Free app-store hosting"},
			AnswerIndex: 1,
		},
		{
			Text:        "Android resources like strings and layouts live in which directory?",
			Options:     [4]string{"src/", "res/", "bin/", "lib/"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is the role of the Android emulator?",
			Options:     [4]string{"Publishing apps", "Running a virtual device for testing", "Obfuscating code", "Managing dependencies"},
			AnswerIndex: 1,
		},
		{
			Text:        "Push notifications on Android are commonly delivered through…",
			Options:     [4]string{"Firebase Cloud Messaging", "Bluetooth", "NFC", "SMS only"},
			AnswerIndex: 0,
		},
	},
	skills.CreativeGame: {
		{
			Text:        "Which language does Unity primarily use for scripting?",
			Options:     [4]string{"C++", "C#", "Lua", "Python"},
			AnswerIndex: 1,
		},
		{
			Text:        "Unreal Engine's visual scripting system is called…",
			Options:     [4]string{"Bolt", "Blueprints", "Playmaker", "Nodes"},
			AnswerIndex: 1,
		},
		{
			Text:        "In game development, what is a sprite?",
			Options:     [4]string{"A 3D physics body", "A 2D image or animation used in a scene", "A sound effect", "A save file"},
			AnswerIndex: 1,
		},
		{
			Text:        "Blender is primarily used for…",
			Options:     [4]string{"3D modeling and animation", "Audio mastering", "Version control", "Level networking"},
			AnswerIndex: 0,
		},
		{
			Text:        "What does FPS measure in a running game?",
			Options:     [4]string{"File parsing speed", "Frames rendered per second", "Fast packet switching", "Polygon count"},
			AnswerIndex: 1,
		},
		{
			Text:        "A game loop typically repeats which pair of steps?",
			Options:     [4]string{"Compile and link", "Update and render", "Load and save", "Encrypt and decrypt"},
			AnswerIndex: 1,
		},
		{
			Text:        "In UI/UX design, a wireframe is…",
			Options:     [4]string{"a finished visual design", "a low-fidelity layout sketch of a screen", "a color palette", "a font family"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which file format supports transparency for 2D art?",
			Options:     [4]string{"JPG", "PNG", "BMP", "TXT"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is texture mapping?",
			Options:     [4]string{"Applying a 2D image onto a 3D surface", "Generating terrain heightmaps", "Compressing audio", "Ray tracing shadows"},
			AnswerIndex: 0,
		},
		{
			Text:        "Figma is best described as…",
			Options:     [4]string{"a collaborative interface design tool", "a game engine", "a video editor", "a 3D renderer"},
			AnswerIndex: 0,
		},
		{
			Text:        "In animation, keyframes define…",
			Options:     [4]string{"audio cues", "the start and end points of an interpolated motion", "polygon counts", "shader constants"},
			AnswerIndex: 1,
		},
		{
			Text:        "A rigid-body physics component gives a game object…",
			Options:     [4]string{"a texture", "mass and collision response", "a user interface", "network identity"},
			AnswerIndex: 1,
		},
	},
	skills.Security: {
		{
			Text:        "What does a firewall do?",
			Options:     [4]string{"Encrypts disks", "Filters network traffic by rules", "Scans for viruses on disk", "Backs up files"},
			AnswerIndex: 1,
		},
		{
			Text:        "Phishing is an attack that…",
			Options:     [4]string{"exploits buffer overflows", "tricks people into revealing credentials", "floods a server with traffic", "cracks Wi-Fi passwords"},
			AnswerIndex: 1,
		},
		{
			Text:        "What does HTTPS add over HTTP?",
			Options:     [4]string{"Compression", "Transport encryption and authentication", "Faster DNS", "Caching"},
			AnswerIndex: 1,
		},
		{
			Text:        "SQL injection is prevented primarily by…",
			Options:     [4]string{"parameterized queries", "longer passwords", "obfuscated table names", "disabling HTTPS"},
			AnswerIndex: 0,
		},
		{
			Text:        "In cryptography, a hash function is…",
			Options:     [4]string{"reversible with the right key", "a one-way fixed-length digest", "a symmetric cipher", "a key-exchange protocol"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is two-factor authentication?",
			Options:     [4]string{"Two passwords", "Combining two independent proof types, e.g. password + device", "Logging in twice", "Using two browsers"},
			AnswerIndex: 1,
		},
		{
			Text:        "A DDoS attack aims to…",
			Options:     [4]string{"steal database rows", "exhaust a service with traffic from many sources", "escalate local privileges", "forge TLS certificates"},
			AnswerIndex: 1,
		},
		{
			Text:        "Wireshark is a tool for…",
			Options:     [4]string{"capturing and inspecting network packets", "editing firewall hardware", "writing exploits automatically", "managing passwords"},
			AnswerIndex: 0,
		},
		{
			Text:        "The principle of least privilege means…",
			Options:     [4]string{"admins get all access", "every account gets only the access it needs", "passwords expire weekly", "all ports stay closed"},
			AnswerIndex: 1,
		},
		{
			Text:        "Which port does HTTPS use by default?",
			Options:     [4]string{"21", "80", "443", "25"},
			AnswerIndex: 2,
		},
		{
			Text:        "Penetration testing is…",
			Options:     [4]string{"unauthorized hacking", "authorized, simulated attacks to find weaknesses", "installing antivirus", "encrypting backups"},
			AnswerIndex: 1,
		},
		{
			Text:        "Salting a password hash defends against…",
			Options:     [4]string{"SQL injection", "precomputed rainbow-table lookups", "phishing", "packet sniffing"},
			AnswerIndex: 1,
		},
	},
	skills.QualityColab: {
		{
			Text:        "In Git, what does a branch represent?",
			Options:     [4]string{"A compressed backup", "An independent line of development", "A remote server", "A build artifact"},
			AnswerIndex: 1,
		},
		{
			Text:        "A unit test verifies…",
			Options:     [4]string{"the whole deployed system", "one small piece of code in isolation", "network latency", "UI colors"},
			AnswerIndex: 1,
		},
		{
			Text:        "In Scrum, work is delivered in fixed-length iterations called…",
			Options:     [4]string{"phases", "sprints", "milestones", "epics"},
			AnswerIndex: 1,
		},
		{
			Text:        "The purpose of a code review is to…",
			Options:     [4]string{"assign blame", "catch defects and share knowledge before merging", "slow the team down", "replace testing"},
			AnswerIndex: 1,
		},
		{
			Text:        "What is a regression bug?",
			Options:     [4]string{"A bug in new code only", "Previously working behavior that broke", "A cosmetic issue", "A compiler warning"},
			AnswerIndex: 1,
		},
		{
			Text:        "A daily stand-up is meant to be…",
			Options:     [4]string{"a detailed design review", "a short sync on progress and blockers", "a performance appraisal", "a sprint retrospective"},
			AnswerIndex: 1,
		},
		{
			Text:        "In Git, 'merge conflict' means…",
			Options:     [4]string{"the repository is corrupt", "two changes touched the same lines and need manual resolution", "the remote is down", "a failed test"},
			AnswerIndex: 1,
		},
		{
			Text:        "Test-driven development writes…",
			Options:     [4]string{"tests after release", "the failing test before the implementation", "only integration tests", "no tests"},
			AnswerIndex: 1,
		},
		{
			Text:        "A product backlog is…",
			Options:     [4]string{"a list of completed work", "an ordered list of work still to be done", "the CI history", "a bug-only tracker"},
			AnswerIndex: 1,
		},
		{
			Text:        "Good documentation primarily serves to…",
			Options:     [4]string{"increase line count", "let others use and change the system without tribal knowledge", "satisfy auditors only", "replace tests"},
			AnswerIndex: 1,
		},
		{
			Text:        "Selenium is a tool for…",
			Options:     [4]string{"automating browsers for end-to-end tests", "static code analysis", "load balancing", "container builds"},
			AnswerIndex: 0,
		},
		{
			Text:        "In agile estimation, story points measure…",
			Options:     [4]string{"exact hours", "relative effort and complexity", "lines of code", "team head-count"},
			AnswerIndex: 1,
		},
	},
}
