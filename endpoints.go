package esendpoints

// Endpoints is the table of Elasticsearch REST API endpoints known to DefaultRegistry, sorted by name. It follows the
// published REST API specification; where the specification lists two path shapes that would be indistinguishable
// once filled in (eg. /_nodes/{node_id} and /_nodes/{metric}) only the first is kept, since the first matching route
// wins.
var Endpoints = []EndpointSource{
	{Name: "async_search.delete", Routes: []string{"/_async_search/{id}"}},
	{Name: "async_search.get", Routes: []string{"/_async_search/{id}"}},
	{Name: "async_search.status", Routes: []string{"/_async_search/status/{id}"}},
	{Name: "async_search.submit", Routes: []string{"/_async_search", "/{index}/_async_search"}},
	{Name: "autoscaling.delete_autoscaling_policy", Routes: []string{"/_autoscaling/policy/{name}"}},
	{Name: "autoscaling.get_autoscaling_capacity", Routes: []string{"/_autoscaling/capacity"}},
	{Name: "autoscaling.get_autoscaling_policy", Routes: []string{"/_autoscaling/policy/{name}"}},
	{Name: "autoscaling.put_autoscaling_policy", Routes: []string{"/_autoscaling/policy/{name}"}},
	{Name: "bulk", Routes: []string{"/_bulk", "/{index}/_bulk"}},
	{Name: "cat.aliases", Routes: []string{"/_cat/aliases", "/_cat/aliases/{name}"}},
	{Name: "cat.allocation", Routes: []string{"/_cat/allocation", "/_cat/allocation/{node_id}"}},
	{Name: "cat.component_templates", Routes: []string{"/_cat/component_templates", "/_cat/component_templates/{name}"}},
	{Name: "cat.count", Routes: []string{"/_cat/count", "/_cat/count/{index}"}},
	{Name: "cat.fielddata", Routes: []string{"/_cat/fielddata", "/_cat/fielddata/{fields}"}},
	{Name: "cat.health", Routes: []string{"/_cat/health"}},
	{Name: "cat.help", Routes: []string{"/_cat"}},
	{Name: "cat.indices", Routes: []string{"/_cat/indices", "/_cat/indices/{index}"}},
	{Name: "cat.master", Routes: []string{"/_cat/master"}},
	{Name: "cat.ml_data_frame_analytics", Routes: []string{"/_cat/ml/data_frame/analytics", "/_cat/ml/data_frame/analytics/{id}"}},
	{Name: "cat.ml_datafeeds", Routes: []string{"/_cat/ml/datafeeds", "/_cat/ml/datafeeds/{datafeed_id}"}},
	{Name: "cat.ml_jobs", Routes: []string{"/_cat/ml/anomaly_detectors", "/_cat/ml/anomaly_detectors/{job_id}"}},
	{Name: "cat.ml_trained_models", Routes: []string{"/_cat/ml/trained_models", "/_cat/ml/trained_models/{model_id}"}},
	{Name: "cat.nodeattrs", Routes: []string{"/_cat/nodeattrs"}},
	{Name: "cat.nodes", Routes: []string{"/_cat/nodes"}},
	{Name: "cat.pending_tasks", Routes: []string{"/_cat/pending_tasks"}},
	{Name: "cat.plugins", Routes: []string{"/_cat/plugins"}},
	{Name: "cat.recovery", Routes: []string{"/_cat/recovery", "/_cat/recovery/{index}"}},
	{Name: "cat.repositories", Routes: []string{"/_cat/repositories"}},
	{Name: "cat.segments", Routes: []string{"/_cat/segments", "/_cat/segments/{index}"}},
	{Name: "cat.shards", Routes: []string{"/_cat/shards", "/_cat/shards/{index}"}},
	{Name: "cat.snapshots", Routes: []string{"/_cat/snapshots", "/_cat/snapshots/{repository}"}},
	{Name: "cat.tasks", Routes: []string{"/_cat/tasks"}},
	{Name: "cat.templates", Routes: []string{"/_cat/templates", "/_cat/templates/{name}"}},
	{Name: "cat.thread_pool", Routes: []string{"/_cat/thread_pool", "/_cat/thread_pool/{thread_pool_patterns}"}},
	{Name: "cat.transforms", Routes: []string{"/_cat/transforms", "/_cat/transforms/{transform_id}"}},
	{Name: "ccr.delete_auto_follow_pattern", Routes: []string{"/_ccr/auto_follow/{name}"}},
	{Name: "ccr.follow", Routes: []string{"/{index}/_ccr/follow"}},
	{Name: "ccr.follow_info", Routes: []string{"/{index}/_ccr/info"}},
	{Name: "ccr.follow_stats", Routes: []string{"/{index}/_ccr/stats"}},
	{Name: "ccr.forget_follower", Routes: []string{"/{index}/_ccr/forget_follower"}},
	{Name: "ccr.get_auto_follow_pattern", Routes: []string{"/_ccr/auto_follow", "/_ccr/auto_follow/{name}"}},
	{Name: "ccr.pause_auto_follow_pattern", Routes: []string{"/_ccr/auto_follow/{name}/pause"}},
	{Name: "ccr.pause_follow", Routes: []string{"/{index}/_ccr/pause_follow"}},
	{Name: "ccr.put_auto_follow_pattern", Routes: []string{"/_ccr/auto_follow/{name}"}},
	{Name: "ccr.resume_auto_follow_pattern", Routes: []string{"/_ccr/auto_follow/{name}/resume"}},
	{Name: "ccr.resume_follow", Routes: []string{"/{index}/_ccr/resume_follow"}},
	{Name: "ccr.stats", Routes: []string{"/_ccr/stats"}},
	{Name: "ccr.unfollow", Routes: []string{"/{index}/_ccr/unfollow"}},
	{Name: "clear_scroll", Routes: []string{"/_search/scroll", "/_search/scroll/{scroll_id}"}},
	{Name: "close_point_in_time", Routes: []string{"/_pit"}},
	{Name: "cluster.allocation_explain", Routes: []string{"/_cluster/allocation/explain"}},
	{Name: "cluster.delete_component_template", Routes: []string{"/_component_template/{name}"}},
	{Name: "cluster.delete_voting_config_exclusions", Routes: []string{"/_cluster/voting_config_exclusions"}},
	{Name: "cluster.exists_component_template", Routes: []string{"/_component_template/{name}"}},
	{Name: "cluster.get_component_template", Routes: []string{"/_component_template", "/_component_template/{name}"}},
	{Name: "cluster.get_settings", Routes: []string{"/_cluster/settings"}},
	{Name: "cluster.health", Routes: []string{"/_cluster/health", "/_cluster/health/{index}"}},
	{Name: "cluster.info", Routes: []string{"/_info/{target}"}},
	{Name: "cluster.pending_tasks", Routes: []string{"/_cluster/pending_tasks"}},
	{Name: "cluster.post_voting_config_exclusions", Routes: []string{"/_cluster/voting_config_exclusions"}},
	{Name: "cluster.put_component_template", Routes: []string{"/_component_template/{name}"}},
	{Name: "cluster.put_settings", Routes: []string{"/_cluster/settings"}},
	{Name: "cluster.remote_info", Routes: []string{"/_remote/info"}},
	{Name: "cluster.reroute", Routes: []string{"/_cluster/reroute"}},
	{Name: "cluster.state", Routes: []string{"/_cluster/state", "/_cluster/state/{metric}", "/_cluster/state/{metric}/{index}"}},
	{Name: "cluster.stats", Routes: []string{"/_cluster/stats", "/_cluster/stats/nodes/{node_id}"}},
	{Name: "count", Routes: []string{"/_count", "/{index}/_count"}},
	{Name: "create", Routes: []string{"/{index}/_create/{id}"}},
	{Name: "dangling_indices.delete_dangling_index", Routes: []string{"/_dangling/{index_uuid}"}},
	{Name: "dangling_indices.import_dangling_index", Routes: []string{"/_dangling/{index_uuid}"}},
	{Name: "dangling_indices.list_dangling_indices", Routes: []string{"/_dangling"}},
	{Name: "delete", Routes: []string{"/{index}/_doc/{id}"}},
	{Name: "delete_by_query", Routes: []string{"/{index}/_delete_by_query"}},
	{Name: "delete_by_query_rethrottle", Routes: []string{"/_delete_by_query/{task_id}/_rethrottle"}},
	{Name: "delete_script", Routes: []string{"/_scripts/{id}"}},
	{Name: "enrich.delete_policy", Routes: []string{"/_enrich/policy/{name}"}},
	{Name: "enrich.execute_policy", Routes: []string{"/_enrich/policy/{name}/_execute"}},
	{Name: "enrich.get_policy", Routes: []string{"/_enrich/policy/{name}", "/_enrich/policy"}},
	{Name: "enrich.put_policy", Routes: []string{"/_enrich/policy/{name}"}},
	{Name: "enrich.stats", Routes: []string{"/_enrich/_stats"}},
	{Name: "eql.delete", Routes: []string{"/_eql/search/{id}"}},
	{Name: "eql.get", Routes: []string{"/_eql/search/{id}"}},
	{Name: "eql.get_status", Routes: []string{"/_eql/search/status/{id}"}},
	{Name: "eql.search", Routes: []string{"/{index}/_eql/search"}},
	{Name: "esql.query", Routes: []string{"/_query"}},
	{Name: "exists", Routes: []string{"/{index}/_doc/{id}"}},
	{Name: "exists_source", Routes: []string{"/{index}/_source/{id}"}},
	{Name: "explain", Routes: []string{"/{index}/_explain/{id}"}},
	{Name: "features.get_features", Routes: []string{"/_features"}},
	{Name: "features.reset_features", Routes: []string{"/_features/_reset"}},
	{Name: "field_caps", Routes: []string{"/_field_caps", "/{index}/_field_caps"}},
	{Name: "fleet.global_checkpoints", Routes: []string{"/{index}/_fleet/global_checkpoints"}},
	{Name: "fleet.msearch", Routes: []string{"/_fleet/_fleet_msearch", "/{index}/_fleet/_fleet_msearch"}},
	{Name: "fleet.search", Routes: []string{"/{index}/_fleet/_fleet_search"}},
	{Name: "get", Routes: []string{"/{index}/_doc/{id}"}},
	{Name: "get_script", Routes: []string{"/_scripts/{id}"}},
	{Name: "get_script_context", Routes: []string{"/_script_context"}},
	{Name: "get_script_languages", Routes: []string{"/_script_language"}},
	{Name: "get_source", Routes: []string{"/{index}/_source/{id}"}},
	{Name: "graph.explore", Routes: []string{"/{index}/_graph/explore"}},
	{Name: "health_report", Routes: []string{"/_health_report", "/_health_report/{feature}"}},
	{Name: "ilm.delete_lifecycle", Routes: []string{"/_ilm/policy/{policy}"}},
	{Name: "ilm.explain_lifecycle", Routes: []string{"/{index}/_ilm/explain"}},
	{Name: "ilm.get_lifecycle", Routes: []string{"/_ilm/policy/{policy}", "/_ilm/policy"}},
	{Name: "ilm.get_status", Routes: []string{"/_ilm/status"}},
	{Name: "ilm.migrate_to_data_tiers", Routes: []string{"/_ilm/migrate_to_data_tiers"}},
	{Name: "ilm.move_to_step", Routes: []string{"/_ilm/move/{index}"}},
	{Name: "ilm.put_lifecycle", Routes: []string{"/_ilm/policy/{policy}"}},
	{Name: "ilm.remove_policy", Routes: []string{"/{index}/_ilm/remove"}},
	{Name: "ilm.retry", Routes: []string{"/{index}/_ilm/retry"}},
	{Name: "ilm.start", Routes: []string{"/_ilm/start"}},
	{Name: "ilm.stop", Routes: []string{"/_ilm/stop"}},
	{Name: "index", Routes: []string{"/{index}/_doc/{id}", "/{index}/_doc"}},
	{Name: "indices.add_block", Routes: []string{"/{index}/_block/{block}"}},
	{Name: "indices.analyze", Routes: []string{"/_analyze", "/{index}/_analyze"}},
	{Name: "indices.clear_cache", Routes: []string{"/_cache/clear", "/{index}/_cache/clear"}},
	{Name: "indices.clone", Routes: []string{"/{index}/_clone/{target}"}},
	{Name: "indices.close", Routes: []string{"/{index}/_close"}},
	{Name: "indices.create", Routes: []string{"/{index}"}},
	{Name: "indices.create_data_stream", Routes: []string{"/_data_stream/{name}"}},
	{Name: "indices.data_streams_stats", Routes: []string{"/_data_stream/_stats", "/_data_stream/{name}/_stats"}},
	{Name: "indices.delete", Routes: []string{"/{index}"}},
	{Name: "indices.delete_alias", Routes: []string{"/{index}/_alias/{name}", "/{index}/_aliases/{name}"}},
	{Name: "indices.delete_data_lifecycle", Routes: []string{"/_data_stream/{name}/_lifecycle"}},
	{Name: "indices.delete_data_stream", Routes: []string{"/_data_stream/{name}"}},
	{Name: "indices.delete_index_template", Routes: []string{"/_index_template/{name}"}},
	{Name: "indices.delete_template", Routes: []string{"/_template/{name}"}},
	{Name: "indices.disk_usage", Routes: []string{"/{index}/_disk_usage"}},
	{Name: "indices.downsample", Routes: []string{"/{index}/_downsample/{target_index}"}},
	{Name: "indices.exists", Routes: []string{"/{index}"}},
	{Name: "indices.exists_alias", Routes: []string{"/_alias/{name}", "/{index}/_alias/{name}"}},
	{Name: "indices.exists_index_template", Routes: []string{"/_index_template/{name}"}},
	{Name: "indices.exists_template", Routes: []string{"/_template/{name}"}},
	{Name: "indices.explain_data_lifecycle", Routes: []string{"/{index}/_lifecycle/explain"}},
	{Name: "indices.field_usage_stats", Routes: []string{"/{index}/_field_usage_stats"}},
	{Name: "indices.flush", Routes: []string{"/_flush", "/{index}/_flush"}},
	{Name: "indices.forcemerge", Routes: []string{"/_forcemerge", "/{index}/_forcemerge"}},
	{Name: "indices.get", Routes: []string{"/{index}"}},
	{Name: "indices.get_alias", Routes: []string{"/_alias", "/_alias/{name}", "/{index}/_alias/{name}", "/{index}/_alias"}},
	{Name: "indices.get_data_lifecycle", Routes: []string{"/_data_stream/{name}/_lifecycle"}},
	{Name: "indices.get_data_stream", Routes: []string{"/_data_stream", "/_data_stream/{name}"}},
	{Name: "indices.get_field_mapping", Routes: []string{"/_mapping/field/{fields}", "/{index}/_mapping/field/{fields}"}},
	{Name: "indices.get_index_template", Routes: []string{"/_index_template", "/_index_template/{name}"}},
	{Name: "indices.get_mapping", Routes: []string{"/_mapping", "/{index}/_mapping"}},
	{Name: "indices.get_settings", Routes: []string{"/_settings", "/{index}/_settings", "/{index}/_settings/{name}", "/_settings/{name}"}},
	{Name: "indices.get_template", Routes: []string{"/_template", "/_template/{name}"}},
	{Name: "indices.migrate_to_data_stream", Routes: []string{"/_data_stream/_migrate/{name}"}},
	{Name: "indices.modify_data_stream", Routes: []string{"/_data_stream/_modify"}},
	{Name: "indices.open", Routes: []string{"/{index}/_open"}},
	{Name: "indices.promote_data_stream", Routes: []string{"/_data_stream/_promote/{name}"}},
	{Name: "indices.put_alias", Routes: []string{"/{index}/_alias/{name}", "/{index}/_aliases/{name}"}},
	{Name: "indices.put_data_lifecycle", Routes: []string{"/_data_stream/{name}/_lifecycle"}},
	{Name: "indices.put_index_template", Routes: []string{"/_index_template/{name}"}},
	{Name: "indices.put_mapping", Routes: []string{"/{index}/_mapping"}},
	{Name: "indices.put_settings", Routes: []string{"/_settings", "/{index}/_settings"}},
	{Name: "indices.put_template", Routes: []string{"/_template/{name}"}},
	{Name: "indices.recovery", Routes: []string{"/_recovery", "/{index}/_recovery"}},
	{Name: "indices.refresh", Routes: []string{"/_refresh", "/{index}/_refresh"}},
	{Name: "indices.reload_search_analyzers", Routes: []string{"/{index}/_reload_search_analyzers"}},
	{Name: "indices.resolve_index", Routes: []string{"/_resolve/index/{name}"}},
	{Name: "indices.rollover", Routes: []string{"/{alias}/_rollover", "/{alias}/_rollover/{new_index}"}},
	{Name: "indices.segments", Routes: []string{"/_segments", "/{index}/_segments"}},
	{Name: "indices.shard_stores", Routes: []string{"/_shard_stores", "/{index}/_shard_stores"}},
	{Name: "indices.shrink", Routes: []string{"/{index}/_shrink/{target}"}},
	{Name: "indices.simulate_index_template", Routes: []string{"/_index_template/_simulate_index/{name}"}},
	{Name: "indices.simulate_template", Routes: []string{"/_index_template/_simulate", "/_index_template/_simulate/{name}"}},
	{Name: "indices.split", Routes: []string{"/{index}/_split/{target}"}},
	{Name: "indices.stats", Routes: []string{"/_stats", "/_stats/{metric}", "/{index}/_stats", "/{index}/_stats/{metric}"}},
	{Name: "indices.update_aliases", Routes: []string{"/_aliases"}},
	{Name: "indices.validate_query", Routes: []string{"/_validate/query", "/{index}/_validate/query"}},
	{Name: "inference.delete", Routes: []string{"/_inference/{inference_id}", "/_inference/{task_type}/{inference_id}"}},
	{Name: "inference.get", Routes: []string{"/_inference", "/_inference/{inference_id}", "/_inference/{task_type}/{inference_id}"}},
	{Name: "inference.inference", Routes: []string{"/_inference/{inference_id}", "/_inference/{task_type}/{inference_id}"}},
	{Name: "inference.put", Routes: []string{"/_inference/{inference_id}", "/_inference/{task_type}/{inference_id}"}},
	{Name: "info", Routes: []string{"/"}},
	{Name: "ingest.delete_pipeline", Routes: []string{"/_ingest/pipeline/{id}"}},
	{Name: "ingest.geo_ip_stats", Routes: []string{"/_ingest/geoip/stats"}},
	{Name: "ingest.get_pipeline", Routes: []string{"/_ingest/pipeline", "/_ingest/pipeline/{id}"}},
	{Name: "ingest.processor_grok", Routes: []string{"/_ingest/processor/grok"}},
	{Name: "ingest.put_pipeline", Routes: []string{"/_ingest/pipeline/{id}"}},
	{Name: "ingest.simulate", Routes: []string{"/_ingest/pipeline/_simulate", "/_ingest/pipeline/{id}/_simulate"}},
	{Name: "knn_search", Routes: []string{"/{index}/_knn_search"}},
	{Name: "license.delete", Routes: []string{"/_license"}},
	{Name: "license.get", Routes: []string{"/_license"}},
	{Name: "license.get_basic_status", Routes: []string{"/_license/basic_status"}},
	{Name: "license.get_trial_status", Routes: []string{"/_license/trial_status"}},
	{Name: "license.post", Routes: []string{"/_license"}},
	{Name: "license.post_start_basic", Routes: []string{"/_license/start_basic"}},
	{Name: "license.post_start_trial", Routes: []string{"/_license/start_trial"}},
	{Name: "logstash.delete_pipeline", Routes: []string{"/_logstash/pipeline/{id}"}},
	{Name: "logstash.get_pipeline", Routes: []string{"/_logstash/pipeline", "/_logstash/pipeline/{id}"}},
	{Name: "logstash.put_pipeline", Routes: []string{"/_logstash/pipeline/{id}"}},
	{Name: "mget", Routes: []string{"/_mget", "/{index}/_mget"}},
	{Name: "migration.deprecations", Routes: []string{"/_migration/deprecations", "/{index}/_migration/deprecations"}},
	{Name: "migration.get_feature_upgrade_status", Routes: []string{"/_migration/system_features"}},
	{Name: "migration.post_feature_upgrade", Routes: []string{"/_migration/system_features"}},
	{Name: "ml.clear_trained_model_deployment_cache", Routes: []string{"/_ml/trained_models/{model_id}/deployment/cache/_clear"}},
	{Name: "ml.close_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_close"}},
	{Name: "ml.delete_calendar", Routes: []string{"/_ml/calendars/{calendar_id}"}},
	{Name: "ml.delete_calendar_event", Routes: []string{"/_ml/calendars/{calendar_id}/events/{event_id}"}},
	{Name: "ml.delete_calendar_job", Routes: []string{"/_ml/calendars/{calendar_id}/jobs/{job_id}"}},
	{Name: "ml.delete_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}"}},
	{Name: "ml.delete_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}"}},
	{Name: "ml.delete_expired_data", Routes: []string{"/_ml/_delete_expired_data/{job_id}", "/_ml/_delete_expired_data"}},
	{Name: "ml.delete_filter", Routes: []string{"/_ml/filters/{filter_id}"}},
	{Name: "ml.delete_forecast", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_forecast", "/_ml/anomaly_detectors/{job_id}/_forecast/{forecast_id}"}},
	{Name: "ml.delete_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}"}},
	{Name: "ml.delete_model_snapshot", Routes: []string{"/_ml/anomaly_detectors/{job_id}/model_snapshots/{snapshot_id}"}},
	{Name: "ml.delete_trained_model", Routes: []string{"/_ml/trained_models/{model_id}"}},
	{Name: "ml.delete_trained_model_alias", Routes: []string{"/_ml/trained_models/{model_id}/model_aliases/{model_alias}"}},
	{Name: "ml.estimate_model_memory", Routes: []string{"/_ml/anomaly_detectors/_estimate_model_memory"}},
	{Name: "ml.evaluate_data_frame", Routes: []string{"/_ml/data_frame/_evaluate"}},
	{Name: "ml.explain_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/_explain", "/_ml/data_frame/analytics/{id}/_explain"}},
	{Name: "ml.flush_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_flush"}},
	{Name: "ml.forecast", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_forecast"}},
	{Name: "ml.get_buckets", Routes: []string{"/_ml/anomaly_detectors/{job_id}/results/buckets/{timestamp}", "/_ml/anomaly_detectors/{job_id}/results/buckets"}},
	{Name: "ml.get_calendar_events", Routes: []string{"/_ml/calendars/{calendar_id}/events"}},
	{Name: "ml.get_calendars", Routes: []string{"/_ml/calendars", "/_ml/calendars/{calendar_id}"}},
	{Name: "ml.get_categories", Routes: []string{"/_ml/anomaly_detectors/{job_id}/results/categories/{category_id}", "/_ml/anomaly_detectors/{job_id}/results/categories"}},
	{Name: "ml.get_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}", "/_ml/data_frame/analytics"}},
	{Name: "ml.get_data_frame_analytics_stats", Routes: []string{"/_ml/data_frame/analytics/_stats", "/_ml/data_frame/analytics/{id}/_stats"}},
	{Name: "ml.get_datafeed_stats", Routes: []string{"/_ml/datafeeds/{datafeed_id}/_stats", "/_ml/datafeeds/_stats"}},
	{Name: "ml.get_datafeeds", Routes: []string{"/_ml/datafeeds/{datafeed_id}", "/_ml/datafeeds"}},
	{Name: "ml.get_filters", Routes: []string{"/_ml/filters", "/_ml/filters/{filter_id}"}},
	{Name: "ml.get_influencers", Routes: []string{"/_ml/anomaly_detectors/{job_id}/results/influencers"}},
	{Name: "ml.get_job_stats", Routes: []string{"/_ml/anomaly_detectors/_stats", "/_ml/anomaly_detectors/{job_id}/_stats"}},
	{Name: "ml.get_jobs", Routes: []string{"/_ml/anomaly_detectors/{job_id}", "/_ml/anomaly_detectors"}},
	{Name: "ml.get_memory_stats", Routes: []string{"/_ml/memory/_stats", "/_ml/memory/{node_id}/_stats"}},
	{Name: "ml.get_model_snapshots", Routes: []string{"/_ml/anomaly_detectors/{job_id}/model_snapshots/{snapshot_id}", "/_ml/anomaly_detectors/{job_id}/model_snapshots"}},
	{Name: "ml.get_overall_buckets", Routes: []string{"/_ml/anomaly_detectors/{job_id}/results/overall_buckets"}},
	{Name: "ml.get_records", Routes: []string{"/_ml/anomaly_detectors/{job_id}/results/records"}},
	{Name: "ml.get_trained_models", Routes: []string{"/_ml/trained_models/{model_id}", "/_ml/trained_models"}},
	{Name: "ml.get_trained_models_stats", Routes: []string{"/_ml/trained_models/{model_id}/_stats", "/_ml/trained_models/_stats"}},
	{Name: "ml.infer_trained_model", Routes: []string{"/_ml/trained_models/{model_id}/_infer", "/_ml/trained_models/{model_id}/deployment/_infer"}},
	{Name: "ml.info", Routes: []string{"/_ml/info"}},
	{Name: "ml.open_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_open"}},
	{Name: "ml.post_calendar_events", Routes: []string{"/_ml/calendars/{calendar_id}/events"}},
	{Name: "ml.preview_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}/_preview", "/_ml/datafeeds/_preview"}},
	{Name: "ml.put_calendar", Routes: []string{"/_ml/calendars/{calendar_id}"}},
	{Name: "ml.put_calendar_job", Routes: []string{"/_ml/calendars/{calendar_id}/jobs/{job_id}"}},
	{Name: "ml.put_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}"}},
	{Name: "ml.put_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}"}},
	{Name: "ml.put_filter", Routes: []string{"/_ml/filters/{filter_id}"}},
	{Name: "ml.put_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}"}},
	{Name: "ml.put_trained_model", Routes: []string{"/_ml/trained_models/{model_id}"}},
	{Name: "ml.put_trained_model_alias", Routes: []string{"/_ml/trained_models/{model_id}/model_aliases/{model_alias}"}},
	{Name: "ml.reset_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_reset"}},
	{Name: "ml.revert_model_snapshot", Routes: []string{"/_ml/anomaly_detectors/{job_id}/model_snapshots/{snapshot_id}/_revert"}},
	{Name: "ml.set_upgrade_mode", Routes: []string{"/_ml/set_upgrade_mode"}},
	{Name: "ml.start_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}/_start"}},
	{Name: "ml.start_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}/_start"}},
	{Name: "ml.start_trained_model_deployment", Routes: []string{"/_ml/trained_models/{model_id}/deployment/_start"}},
	{Name: "ml.stop_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}/_stop"}},
	{Name: "ml.stop_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}/_stop"}},
	{Name: "ml.stop_trained_model_deployment", Routes: []string{"/_ml/trained_models/{model_id}/deployment/_stop"}},
	{Name: "ml.update_data_frame_analytics", Routes: []string{"/_ml/data_frame/analytics/{id}/_update"}},
	{Name: "ml.update_datafeed", Routes: []string{"/_ml/datafeeds/{datafeed_id}/_update"}},
	{Name: "ml.update_filter", Routes: []string{"/_ml/filters/{filter_id}/_update"}},
	{Name: "ml.update_job", Routes: []string{"/_ml/anomaly_detectors/{job_id}/_update"}},
	{Name: "ml.update_model_snapshot", Routes: []string{"/_ml/anomaly_detectors/{job_id}/model_snapshots/{snapshot_id}/_update"}},
	{Name: "ml.upgrade_job_snapshot", Routes: []string{"/_ml/anomaly_detectors/{job_id}/model_snapshots/{snapshot_id}/_upgrade"}},
	{Name: "ml.validate", Routes: []string{"/_ml/anomaly_detectors/_validate"}},
	{Name: "ml.validate_detector", Routes: []string{"/_ml/anomaly_detectors/_validate/detector"}},
	{Name: "monitoring.bulk", Routes: []string{"/_monitoring/bulk"}},
	{Name: "msearch", Routes: []string{"/_msearch", "/{index}/_msearch"}},
	{Name: "msearch_template", Routes: []string{"/_msearch/template", "/{index}/_msearch/template"}},
	{Name: "mtermvectors", Routes: []string{"/_mtermvectors", "/{index}/_mtermvectors"}},
	{Name: "nodes.clear_repositories_metering_archive", Routes: []string{"/_nodes/{node_id}/_repositories_metering/{max_archive_version}"}},
	{Name: "nodes.get_repositories_metering_info", Routes: []string{"/_nodes/{node_id}/_repositories_metering"}},
	{Name: "nodes.hot_threads", Routes: []string{"/_nodes/hot_threads", "/_nodes/{node_id}/hot_threads"}},
	{Name: "nodes.info", Routes: []string{"/_nodes", "/_nodes/{node_id}", "/_nodes/{node_id}/{metric}"}},
	{Name: "nodes.reload_secure_settings", Routes: []string{"/_nodes/reload_secure_settings", "/_nodes/{node_id}/reload_secure_settings"}},
	{Name: "nodes.stats", Routes: []string{"/_nodes/stats", "/_nodes/{node_id}/stats", "/_nodes/stats/{metric}", "/_nodes/{node_id}/stats/{metric}", "/_nodes/stats/{metric}/{index_metric}", "/_nodes/{node_id}/stats/{metric}/{index_metric}"}},
	{Name: "nodes.usage", Routes: []string{"/_nodes/usage", "/_nodes/{node_id}/usage", "/_nodes/usage/{metric}", "/_nodes/{node_id}/usage/{metric}"}},
	{Name: "open_point_in_time", Routes: []string{"/{index}/_pit"}},
	{Name: "ping", Routes: []string{"/"}},
	{Name: "put_script", Routes: []string{"/_scripts/{id}", "/_scripts/{id}/{context}"}},
	{Name: "query_rules.delete_ruleset", Routes: []string{"/_query_rules/{ruleset_id}"}},
	{Name: "query_rules.get_ruleset", Routes: []string{"/_query_rules/{ruleset_id}"}},
	{Name: "query_rules.list_rulesets", Routes: []string{"/_query_rules"}},
	{Name: "query_rules.put_ruleset", Routes: []string{"/_query_rules/{ruleset_id}"}},
	{Name: "rank_eval", Routes: []string{"/_rank_eval", "/{index}/_rank_eval"}},
	{Name: "reindex", Routes: []string{"/_reindex"}},
	{Name: "reindex_rethrottle", Routes: []string{"/_reindex/{task_id}/_rethrottle"}},
	{Name: "render_search_template", Routes: []string{"/_render/template", "/_render/template/{id}"}},
	{Name: "rollup.delete_job", Routes: []string{"/_rollup/job/{id}"}},
	{Name: "rollup.get_jobs", Routes: []string{"/_rollup/job/{id}", "/_rollup/job"}},
	{Name: "rollup.get_rollup_caps", Routes: []string{"/_rollup/data/{id}", "/_rollup/data"}},
	{Name: "rollup.get_rollup_index_caps", Routes: []string{"/{index}/_rollup/data"}},
	{Name: "rollup.put_job", Routes: []string{"/_rollup/job/{id}"}},
	{Name: "rollup.rollup_search", Routes: []string{"/{index}/_rollup_search"}},
	{Name: "rollup.start_job", Routes: []string{"/_rollup/job/{id}/_start"}},
	{Name: "rollup.stop_job", Routes: []string{"/_rollup/job/{id}/_stop"}},
	{Name: "scripts_painless_execute", Routes: []string{"/_scripts/painless/_execute"}},
	{Name: "scroll", Routes: []string{"/_search/scroll", "/_search/scroll/{scroll_id}"}},
	{Name: "search", Routes: []string{"/_search", "/{index}/_search"}},
	{Name: "search_application.delete", Routes: []string{"/_application/search_application/{name}"}},
	{Name: "search_application.delete_behavioral_analytics", Routes: []string{"/_application/analytics/{name}"}},
	{Name: "search_application.get", Routes: []string{"/_application/search_application/{name}"}},
	{Name: "search_application.get_behavioral_analytics", Routes: []string{"/_application/analytics", "/_application/analytics/{name}"}},
	{Name: "search_application.list", Routes: []string{"/_application/search_application"}},
	{Name: "search_application.post_behavioral_analytics_event", Routes: []string{"/_application/analytics/{collection_name}/event/{event_type}"}},
	{Name: "search_application.put", Routes: []string{"/_application/search_application/{name}"}},
	{Name: "search_application.put_behavioral_analytics", Routes: []string{"/_application/analytics/{name}"}},
	{Name: "search_application.search", Routes: []string{"/_application/search_application/{name}/_search"}},
	{Name: "search_mvt", Routes: []string{"/{index}/_mvt/{field}/{zoom}/{x}/{y}"}},
	{Name: "search_shards", Routes: []string{"/_search_shards", "/{index}/_search_shards"}},
	{Name: "search_template", Routes: []string{"/_search/template", "/{index}/_search/template"}},
	{Name: "searchable_snapshots.cache_stats", Routes: []string{"/_searchable_snapshots/cache/stats", "/_searchable_snapshots/{node_id}/cache/stats"}},
	{Name: "searchable_snapshots.clear_cache", Routes: []string{"/_searchable_snapshots/cache/clear", "/{index}/_searchable_snapshots/cache/clear"}},
	{Name: "searchable_snapshots.mount", Routes: []string{"/_snapshot/{repository}/{snapshot}/_mount"}},
	{Name: "searchable_snapshots.stats", Routes: []string{"/_searchable_snapshots/stats", "/{index}/_searchable_snapshots/stats"}},
	{Name: "security.activate_user_profile", Routes: []string{"/_security/profile/_activate"}},
	{Name: "security.authenticate", Routes: []string{"/_security/_authenticate"}},
	{Name: "security.change_password", Routes: []string{"/_security/user/{username}/_password", "/_security/user/_password"}},
	{Name: "security.clear_api_key_cache", Routes: []string{"/_security/api_key/{ids}/_clear_cache"}},
	{Name: "security.clear_cached_privileges", Routes: []string{"/_security/privilege/{application}/_clear_cache"}},
	{Name: "security.clear_cached_realms", Routes: []string{"/_security/realm/{realms}/_clear_cache"}},
	{Name: "security.clear_cached_roles", Routes: []string{"/_security/role/{name}/_clear_cache"}},
	{Name: "security.clear_cached_service_tokens", Routes: []string{"/_security/service/{namespace}/{service}/credential/token/{name}/_clear_cache"}},
	{Name: "security.create_api_key", Routes: []string{"/_security/api_key"}},
	{Name: "security.create_service_token", Routes: []string{"/_security/service/{namespace}/{service}/credential/token/{name}", "/_security/service/{namespace}/{service}/credential/token"}},
	{Name: "security.delete_privileges", Routes: []string{"/_security/privilege/{application}/{name}"}},
	{Name: "security.delete_role", Routes: []string{"/_security/role/{name}"}},
	{Name: "security.delete_role_mapping", Routes: []string{"/_security/role_mapping/{name}"}},
	{Name: "security.delete_service_token", Routes: []string{"/_security/service/{namespace}/{service}/credential/token/{name}"}},
	{Name: "security.delete_user", Routes: []string{"/_security/user/{username}"}},
	{Name: "security.disable_user", Routes: []string{"/_security/user/{username}/_disable"}},
	{Name: "security.disable_user_profile", Routes: []string{"/_security/profile/{uid}/_disable"}},
	{Name: "security.enable_user", Routes: []string{"/_security/user/{username}/_enable"}},
	{Name: "security.enable_user_profile", Routes: []string{"/_security/profile/{uid}/_enable"}},
	{Name: "security.enroll_kibana", Routes: []string{"/_security/enroll/kibana"}},
	{Name: "security.enroll_node", Routes: []string{"/_security/enroll/node"}},
	{Name: "security.get_api_key", Routes: []string{"/_security/api_key"}},
	{Name: "security.get_builtin_privileges", Routes: []string{"/_security/privilege/_builtin"}},
	{Name: "security.get_privileges", Routes: []string{"/_security/privilege", "/_security/privilege/{application}", "/_security/privilege/{application}/{name}"}},
	{Name: "security.get_role", Routes: []string{"/_security/role/{name}", "/_security/role"}},
	{Name: "security.get_role_mapping", Routes: []string{"/_security/role_mapping/{name}", "/_security/role_mapping"}},
	{Name: "security.get_service_accounts", Routes: []string{"/_security/service", "/_security/service/{namespace}", "/_security/service/{namespace}/{service}"}},
	{Name: "security.get_service_credentials", Routes: []string{"/_security/service/{namespace}/{service}/credential"}},
	{Name: "security.get_token", Routes: []string{"/_security/oauth2/token"}},
	{Name: "security.get_user", Routes: []string{"/_security/user/{username}", "/_security/user"}},
	{Name: "security.get_user_privileges", Routes: []string{"/_security/user/_privileges"}},
	{Name: "security.get_user_profile", Routes: []string{"/_security/profile/{uid}"}},
	{Name: "security.grant_api_key", Routes: []string{"/_security/api_key/grant"}},
	{Name: "security.has_privileges", Routes: []string{"/_security/user/_has_privileges", "/_security/user/{user}/_has_privileges"}},
	{Name: "security.has_privileges_user_profile", Routes: []string{"/_security/profile/_has_privileges"}},
	{Name: "security.invalidate_api_key", Routes: []string{"/_security/api_key"}},
	{Name: "security.invalidate_token", Routes: []string{"/_security/oauth2/token"}},
	{Name: "security.put_privileges", Routes: []string{"/_security/privilege"}},
	{Name: "security.put_role", Routes: []string{"/_security/role/{name}"}},
	{Name: "security.put_role_mapping", Routes: []string{"/_security/role_mapping/{name}"}},
	{Name: "security.put_user", Routes: []string{"/_security/user/{username}"}},
	{Name: "security.query_api_keys", Routes: []string{"/_security/_query/api_key"}},
	{Name: "security.saml_authenticate", Routes: []string{"/_security/saml/authenticate"}},
	{Name: "security.saml_invalidate", Routes: []string{"/_security/saml/invalidate"}},
	{Name: "security.saml_logout", Routes: []string{"/_security/saml/logout"}},
	{Name: "security.saml_prepare_authentication", Routes: []string{"/_security/saml/prepare"}},
	{Name: "security.saml_service_provider_metadata", Routes: []string{"/_security/saml/metadata/{realm_name}"}},
	{Name: "security.suggest_user_profiles", Routes: []string{"/_security/profile/_suggest"}},
	{Name: "security.update_api_key", Routes: []string{"/_security/api_key/{id}"}},
	{Name: "security.update_user_profile_data", Routes: []string{"/_security/profile/{uid}/_data"}},
	{Name: "shutdown.delete_node", Routes: []string{"/_nodes/{node_id}/shutdown"}},
	{Name: "shutdown.get_node", Routes: []string{"/_nodes/shutdown", "/_nodes/{node_id}/shutdown"}},
	{Name: "shutdown.put_node", Routes: []string{"/_nodes/{node_id}/shutdown"}},
	{Name: "slm.delete_lifecycle", Routes: []string{"/_slm/policy/{policy_id}"}},
	{Name: "slm.execute_lifecycle", Routes: []string{"/_slm/policy/{policy_id}/_execute"}},
	{Name: "slm.execute_retention", Routes: []string{"/_slm/_execute_retention"}},
	{Name: "slm.get_lifecycle", Routes: []string{"/_slm/policy/{policy_id}", "/_slm/policy"}},
	{Name: "slm.get_stats", Routes: []string{"/_slm/stats"}},
	{Name: "slm.get_status", Routes: []string{"/_slm/status"}},
	{Name: "slm.put_lifecycle", Routes: []string{"/_slm/policy/{policy_id}"}},
	{Name: "slm.start", Routes: []string{"/_slm/start"}},
	{Name: "slm.stop", Routes: []string{"/_slm/stop"}},
	{Name: "snapshot.cleanup_repository", Routes: []string{"/_snapshot/{repository}/_cleanup"}},
	{Name: "snapshot.clone", Routes: []string{"/_snapshot/{repository}/{snapshot}/_clone/{target_snapshot}"}},
	{Name: "snapshot.create", Routes: []string{"/_snapshot/{repository}/{snapshot}"}},
	{Name: "snapshot.create_repository", Routes: []string{"/_snapshot/{repository}"}},
	{Name: "snapshot.delete", Routes: []string{"/_snapshot/{repository}/{snapshot}"}},
	{Name: "snapshot.delete_repository", Routes: []string{"/_snapshot/{repository}"}},
	{Name: "snapshot.get", Routes: []string{"/_snapshot/{repository}/{snapshot}"}},
	{Name: "snapshot.get_repository", Routes: []string{"/_snapshot", "/_snapshot/{repository}"}},
	{Name: "snapshot.repository_analyze", Routes: []string{"/_snapshot/{repository}/_analyze"}},
	{Name: "snapshot.restore", Routes: []string{"/_snapshot/{repository}/{snapshot}/_restore"}},
	{Name: "snapshot.status", Routes: []string{"/_snapshot/_status", "/_snapshot/{repository}/_status", "/_snapshot/{repository}/{snapshot}/_status"}},
	{Name: "snapshot.verify_repository", Routes: []string{"/_snapshot/{repository}/_verify"}},
	{Name: "sql.clear_cursor", Routes: []string{"/_sql/close"}},
	{Name: "sql.delete_async", Routes: []string{"/_sql/async/delete/{id}"}},
	{Name: "sql.get_async", Routes: []string{"/_sql/async/{id}"}},
	{Name: "sql.get_async_status", Routes: []string{"/_sql/async/status/{id}"}},
	{Name: "sql.query", Routes: []string{"/_sql"}},
	{Name: "sql.translate", Routes: []string{"/_sql/translate"}},
	{Name: "ssl.certificates", Routes: []string{"/_ssl/certificates"}},
	{Name: "synonyms.delete_synonym", Routes: []string{"/_synonyms/{id}"}},
	{Name: "synonyms.delete_synonym_rule", Routes: []string{"/_synonyms/{set_id}/{rule_id}"}},
	{Name: "synonyms.get_synonym", Routes: []string{"/_synonyms/{id}"}},
	{Name: "synonyms.get_synonym_rule", Routes: []string{"/_synonyms/{set_id}/{rule_id}"}},
	{Name: "synonyms.get_synonyms_sets", Routes: []string{"/_synonyms"}},
	{Name: "synonyms.put_synonym", Routes: []string{"/_synonyms/{id}"}},
	{Name: "synonyms.put_synonym_rule", Routes: []string{"/_synonyms/{set_id}/{rule_id}"}},
	{Name: "tasks.cancel", Routes: []string{"/_tasks/_cancel", "/_tasks/{task_id}/_cancel"}},
	{Name: "tasks.get", Routes: []string{"/_tasks/{task_id}"}},
	{Name: "tasks.list", Routes: []string{"/_tasks"}},
	{Name: "terms_enum", Routes: []string{"/{index}/_terms_enum"}},
	{Name: "termvectors", Routes: []string{"/{index}/_termvectors/{id}", "/{index}/_termvectors"}},
	{Name: "text_structure.find_structure", Routes: []string{"/_text_structure/find_structure"}},
	{Name: "transform.delete_transform", Routes: []string{"/_transform/{transform_id}"}},
	{Name: "transform.get_transform", Routes: []string{"/_transform/{transform_id}", "/_transform"}},
	{Name: "transform.get_transform_stats", Routes: []string{"/_transform/{transform_id}/_stats"}},
	{Name: "transform.preview_transform", Routes: []string{"/_transform/{transform_id}/_preview", "/_transform/_preview"}},
	{Name: "transform.put_transform", Routes: []string{"/_transform/{transform_id}"}},
	{Name: "transform.reset_transform", Routes: []string{"/_transform/{transform_id}/_reset"}},
	{Name: "transform.schedule_now_transform", Routes: []string{"/_transform/{transform_id}/_schedule_now"}},
	{Name: "transform.start_transform", Routes: []string{"/_transform/{transform_id}/_start"}},
	{Name: "transform.stop_transform", Routes: []string{"/_transform/{transform_id}/_stop"}},
	{Name: "transform.update_transform", Routes: []string{"/_transform/{transform_id}/_update"}},
	{Name: "transform.upgrade_transforms", Routes: []string{"/_transform/_upgrade"}},
	{Name: "update", Routes: []string{"/{index}/_update/{id}"}},
	{Name: "update_by_query", Routes: []string{"/{index}/_update_by_query"}},
	{Name: "update_by_query_rethrottle", Routes: []string{"/_update_by_query/{task_id}/_rethrottle"}},
	{Name: "watcher.ack_watch", Routes: []string{"/_watcher/watch/{watch_id}/_ack", "/_watcher/watch/{watch_id}/_ack/{action_id}"}},
	{Name: "watcher.activate_watch", Routes: []string{"/_watcher/watch/{watch_id}/_activate"}},
	{Name: "watcher.deactivate_watch", Routes: []string{"/_watcher/watch/{watch_id}/_deactivate"}},
	{Name: "watcher.delete_watch", Routes: []string{"/_watcher/watch/{id}"}},
	{Name: "watcher.execute_watch", Routes: []string{"/_watcher/watch/{id}/_execute", "/_watcher/watch/_execute"}},
	{Name: "watcher.get_settings", Routes: []string{"/_watcher/settings"}},
	{Name: "watcher.get_watch", Routes: []string{"/_watcher/watch/{id}"}},
	{Name: "watcher.put_watch", Routes: []string{"/_watcher/watch/{id}"}},
	{Name: "watcher.query_watches", Routes: []string{"/_watcher/_query/watches"}},
	{Name: "watcher.start", Routes: []string{"/_watcher/_start"}},
	{Name: "watcher.stats", Routes: []string{"/_watcher/stats", "/_watcher/stats/{metric}"}},
	{Name: "watcher.stop", Routes: []string{"/_watcher/_stop"}},
	{Name: "xpack.info", Routes: []string{"/_xpack"}},
	{Name: "xpack.usage", Routes: []string{"/_xpack/usage"}},
}
