package report

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Optipenn CRM - Automated Test Report</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
            color: #333;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
            font-weight: 300;
        }
        .header p {
            margin: 10px 0 0 0;
            opacity: 0.9;
        }
        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            padding: 30px;
            background: #f8f9fa;
        }
        .summary-card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            text-align: center;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .summary-card h3 {
            margin: 0 0 10px 0;
            color: #666;
            font-size: 0.9em;
            text-transform: uppercase;
            letter-spacing: 1px;
        }
        .summary-card .value {
            font-size: 2em;
            font-weight: bold;
            margin: 0;
        }
        .passed { color: #28a745; }
        .failed { color: #dc3545; }
        .ux-score { color: #17a2b8; }
        .duration { color: #6f42c1; }
        .test-results {
            padding: 30px;
        }
        .test-result {
            margin-bottom: 30px;
            border: 1px solid #e9ecef;
            border-radius: 8px;
            overflow: hidden;
        }
        .test-result.passed {
            border-left: 4px solid #28a745;
        }
        .test-result.failed {
            border-left: 4px solid #dc3545;
        }
        .test-header {
            padding: 20px;
            background: #f8f9fa;
            border-bottom: 1px solid #e9ecef;
        }
        .test-header h3 {
            margin: 0;
            display: flex;
            align-items: center;
            justify-content: space-between;
        }
        .test-status {
            font-size: 0.8em;
            padding: 4px 12px;
            border-radius: 20px;
            color: white;
            font-weight: bold;
        }
        .test-status.passed {
            background: #28a745;
        }
        .test-status.failed {
            background: #dc3545;
        }
        .test-content {
            padding: 20px;
        }
        .test-details {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 20px;
            margin-bottom: 20px;
        }
        .test-info {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
        }
        .test-info h4 {
            margin: 0 0 10px 0;
            color: #666;
            font-size: 0.9em;
        }
        .screenshot {
            text-align: center;
            margin-top: 20px;
        }
        .screenshot img {
            max-width: 100%;
            height: auto;
            border-radius: 6px;
            border: 1px solid #e9ecef;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .error-message {
            background: #f8d7da;
            color: #721c24;
            padding: 15px;
            border-radius: 6px;
            margin-top: 15px;
            border: 1px solid #f5c6cb;
        }
        .performance-metrics {
            background: #e1f5fe;
            padding: 15px;
            border-radius: 6px;
            margin-top: 15px;
        }
        .performance-metrics h4 {
            margin: 0 0 10px 0;
            color: #01579b;
        }
        .metric {
            margin: 5px 0;
        }
        .recommendations {
            background: #fff3cd;
            border: 1px solid #ffeaa7;
            padding: 20px;
            margin: 30px;
            border-radius: 8px;
        }
        .recommendations h3 {
            margin: 0 0 15px 0;
            color: #856404;
        }
        .rec-list {
            list-style-type: none;
            padding: 0;
        }
        .rec-list li {
            padding: 8px 0;
            border-bottom: 1px solid #ffeaa7;
        }
        .rec-list li:last-child {
            border-bottom: none;
        }
        .footer {
            text-align: center;
            padding: 20px;
            background: #f8f9fa;
            color: #666;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Optipenn CRM - Test Report</h1>
            <p>Comprehensive Automated Testing Results</p>
            <p>Generated on {{ .GeneratedAt }}</p>
        </div>

        <div class="summary">
            <div class="summary-card">
                <h3>Total Tests</h3>
                <p class="value">{{ .Summary.Total }}</p>
            </div>
            <div class="summary-card">
                <h3>Passed</h3>
                <p class="value passed">{{ .Summary.Passed }}</p>
            </div>
            <div class="summary-card">
                <h3>Failed</h3>
                <p class="value failed">{{ .Summary.Failed }}</p>
            </div>
            <div class="summary-card">
                <h3>Avg UX Score</h3>
                <p class="value ux-score">{{ printf "%.1f" .Summary.AvgUXScore }}/10</p>
            </div>
            <div class="summary-card">
                <h3>Duration</h3>
                <p class="value duration">{{ printf "%.1f" .Summary.Duration.Seconds }}s</p>
            </div>
        </div>

        <div class="test-results">
            <h2>Test Results Details</h2>
{{- range .Results }}
            <div class="test-result {{ .StatusClass }}">
                <div class="test-header">
                    <h3>
                        {{ .Name }}
                        <span class="test-status {{ .StatusClass }}">{{ .StatusText }}</span>
                    </h3>
                </div>
                <div class="test-content">
                    <div class="test-details">
                        <div class="test-info">
                            <h4>Test Information</h4>
                            <div class="metric"><strong>Timestamp:</strong> {{ .Timestamp.Format "15:04:05" }}</div>
                            <div class="metric"><strong>UX Score:</strong> {{ .UXScore }}/10</div>
                            <div class="metric"><strong>Status:</strong> {{ .StatusText }}</div>
                        </div>
                        <div class="test-info">
                            <h4>Assessment</h4>
                            <div class="metric"><strong>Visual Appeal:</strong> {{ .VisualAppeal }}</div>
                            <div class="metric"><strong>Functionality:</strong> {{ .Functionality }}</div>
                            <div class="metric"><strong>B2B Ready:</strong> {{ .B2BReady }}</div>
                        </div>
                    </div>
{{- if .Error }}
                    <div class="error-message">
                        <strong>Error:</strong> {{ .Error }}
                    </div>
{{- end }}
{{- if .Performance }}
                    <div class="performance-metrics">
                        <h4>Performance Metrics</h4>
{{- range $key, $value := .Performance }}
                        <div class="metric"><strong>{{ $key | replace "_" " " | title }}:</strong> {{ $value }}</div>
{{- end }}
                    </div>
{{- end }}
{{- if .ScreenshotURI }}
                    <div class="screenshot">
                        <h4>Screenshot</h4>
                        <img src="{{ .ScreenshotURI }}" alt="Test Screenshot">
                    </div>
{{- end }}
                </div>
            </div>
{{- end }}
        </div>
{{- if .Recommendations }}

        <div class="recommendations">
            <h3>UX Recommendations for Enterprise Users</h3>
            <ul class="rec-list">
{{- range .Recommendations }}
                <li>{{ . }}</li>
{{- end }}
            </ul>
        </div>
{{- end }}

        <div class="footer">
            <p>Report generated by Optipenn CRM Automated Test Suite</p>
            <p>For technical support and UX improvements, review the detailed logs and screenshots above</p>
        </div>
    </div>
</body>
</html>
`
